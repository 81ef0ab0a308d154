package ads

import "strings"

// Operation is one typed slot of a MutateOperation. Exactly one of
// Create, Update or Remove is set; Update requires UpdateMask.
type Operation[T any] struct {
	Create     *T     `json:"create,omitempty"`
	Update     *T     `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
	Remove     string `json:"remove,omitempty"`
}

// Create builds a creation operation for a resource.
func Create[T any](resource *T) *Operation[T] {
	return &Operation[T]{Create: resource}
}

// Update builds an update operation with the given field mask.
func Update[T any](resource *T, mask string) *Operation[T] {
	return &Operation[T]{Update: resource, UpdateMask: mask}
}

// Remove builds a removal operation for a resource name.
func Remove[T any](resourceName string) *Operation[T] {
	return &Operation[T]{Remove: resourceName}
}

// MutateOperation is one entry of a googleAds:mutate batch. The set of
// operation kinds is closed; exactly one field is non-nil per entry, and
// the wire key for each kind is fixed here rather than assembled at
// runtime.
type MutateOperation struct {
	CampaignBudget      *Operation[CampaignBudget]      `json:"campaignBudgetOperation,omitempty"`
	Campaign            *Operation[Campaign]            `json:"campaignOperation,omitempty"`
	AdGroup             *Operation[AdGroup]             `json:"adGroupOperation,omitempty"`
	AdGroupAd           *Operation[AdGroupAd]           `json:"adGroupAdOperation,omitempty"`
	AdGroupCriterion    *Operation[AdGroupCriterion]    `json:"adGroupCriterionOperation,omitempty"`
	CampaignCriterion   *Operation[CampaignCriterion]   `json:"campaignCriterionOperation,omitempty"`
	ConversionAction    *Operation[ConversionAction]    `json:"conversionActionOperation,omitempty"`
	UserList            *Operation[UserList]            `json:"userListOperation,omitempty"`
	Asset               *Operation[Asset]               `json:"assetOperation,omitempty"`
	AssetGroup          *Operation[AssetGroup]          `json:"assetGroupOperation,omitempty"`
	CampaignAsset       *Operation[CampaignAsset]       `json:"campaignAssetOperation,omitempty"`
	BiddingStrategy     *Operation[BiddingStrategy]     `json:"biddingStrategyOperation,omitempty"`
	Label               *Operation[Label]               `json:"labelOperation,omitempty"`
	CampaignLabel       *Operation[CampaignLabel]       `json:"campaignLabelOperation,omitempty"`
	AdGroupLabel        *Operation[AdGroupLabel]        `json:"adGroupLabelOperation,omitempty"`
	Experiment          *Operation[Experiment]          `json:"experimentOperation,omitempty"`
	CustomerManagerLink *Operation[CustomerManagerLink] `json:"customerManagerLinkOperation,omitempty"`
}

// MutateResponse is the body of a googleAds:mutate response.
type MutateResponse struct {
	MutateOperationResponses []MutateOperationResponse `json:"mutateOperationResponses"`
}

// MutateOperationResponse carries the per-kind result of one operation.
type MutateOperationResponse struct {
	CampaignBudgetResult      *MutateResult `json:"campaignBudgetResult,omitempty"`
	CampaignResult            *MutateResult `json:"campaignResult,omitempty"`
	AdGroupResult             *MutateResult `json:"adGroupResult,omitempty"`
	AdGroupAdResult           *MutateResult `json:"adGroupAdResult,omitempty"`
	AdGroupCriterionResult    *MutateResult `json:"adGroupCriterionResult,omitempty"`
	CampaignCriterionResult   *MutateResult `json:"campaignCriterionResult,omitempty"`
	ConversionActionResult    *MutateResult `json:"conversionActionResult,omitempty"`
	UserListResult            *MutateResult `json:"userListResult,omitempty"`
	AssetResult               *MutateResult `json:"assetResult,omitempty"`
	AssetGroupResult          *MutateResult `json:"assetGroupResult,omitempty"`
	CampaignAssetResult       *MutateResult `json:"campaignAssetResult,omitempty"`
	BiddingStrategyResult     *MutateResult `json:"biddingStrategyResult,omitempty"`
	LabelResult               *MutateResult `json:"labelResult,omitempty"`
	CampaignLabelResult       *MutateResult `json:"campaignLabelResult,omitempty"`
	AdGroupLabelResult        *MutateResult `json:"adGroupLabelResult,omitempty"`
	ExperimentResult          *MutateResult `json:"experimentResult,omitempty"`
	CustomerManagerLinkResult *MutateResult `json:"customerManagerLinkResult,omitempty"`
}

// MutateResult holds the resource name of a mutated resource.
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// ResourceName returns the resource name of whichever result kind is
// present, or the empty string when the entry carries no result.
func (r *MutateOperationResponse) ResourceName() string {
	for _, result := range []*MutateResult{
		r.CampaignBudgetResult, r.CampaignResult, r.AdGroupResult,
		r.AdGroupAdResult, r.AdGroupCriterionResult, r.CampaignCriterionResult,
		r.ConversionActionResult, r.UserListResult, r.AssetResult,
		r.AssetGroupResult, r.CampaignAssetResult, r.BiddingStrategyResult,
		r.LabelResult, r.CampaignLabelResult, r.AdGroupLabelResult,
		r.ExperimentResult, r.CustomerManagerLinkResult,
	} {
		if result != nil {
			return result.ResourceName
		}
	}
	return ""
}

// BatchItem is the outcome of one entry in a batched mutate call. Failed
// entries are reported instead of being dropped, so callers always see
// one item per submitted operation.
type BatchItem struct {
	Index        int
	ResourceName string
	ID           string
	Succeeded    bool
}

// batchItems pairs each mutate response entry with its input index.
func batchItems(responses []MutateOperationResponse) []BatchItem {
	items := make([]BatchItem, len(responses))
	for i, resp := range responses {
		name := resp.ResourceName()
		items[i] = BatchItem{
			Index:        i,
			ResourceName: name,
			ID:           lastPathSegment(name),
			Succeeded:    name != "",
		}
	}
	return items
}

// SucceededCount returns how many items of a batch carry a resource name.
func SucceededCount(items []BatchItem) int {
	n := 0
	for _, item := range items {
		if item.Succeeded {
			n++
		}
	}
	return n
}

// lastPathSegment extracts the trailing ID from a resource name such as
// customers/123/campaigns/456.
func lastPathSegment(resourceName string) string {
	if resourceName == "" {
		return ""
	}
	idx := strings.LastIndexByte(resourceName, '/')
	return resourceName[idx+1:]
}

// Wire resource payloads. Field sets cover what the tool surface writes;
// JSON names follow the REST representation.

// CampaignBudget is the campaign budget wire resource.
type CampaignBudget struct {
	ResourceName     string `json:"resourceName,omitempty"`
	Name             string `json:"name,omitempty"`
	AmountMicros     int64  `json:"amountMicros,omitempty"`
	DeliveryMethod   string `json:"deliveryMethod,omitempty"`
	ExplicitlyShared *bool  `json:"explicitlyShared,omitempty"`
}

// Campaign is the campaign wire resource.
type Campaign struct {
	ResourceName              string                   `json:"resourceName,omitempty"`
	Name                      string                   `json:"name,omitempty"`
	Status                    string                   `json:"status,omitempty"`
	AdvertisingChannelType    string                   `json:"advertisingChannelType,omitempty"`
	AdvertisingChannelSubType string                   `json:"advertisingChannelSubType,omitempty"`
	CampaignBudget            string                   `json:"campaignBudget,omitempty"`
	BiddingStrategy           string                   `json:"biddingStrategy,omitempty"`
	StartDate                 string                   `json:"startDate,omitempty"`
	EndDate                   string                   `json:"endDate,omitempty"`
	MaximizeConversions       *MaximizeConversions     `json:"maximizeConversions,omitempty"`
	MaximizeConversionValue   *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
	TargetSpend               *TargetSpend             `json:"targetSpend,omitempty"`
	AppCampaignSetting        *AppCampaignSetting      `json:"appCampaignSetting,omitempty"`
	URLExpansionOptOut        *bool                    `json:"urlExpansionOptOut,omitempty"`
}

// AppCampaignSetting configures an app promotion campaign.
type AppCampaignSetting struct {
	AppID                   string `json:"appId,omitempty"`
	AppStore                string `json:"appStore,omitempty"`
	BiddingStrategyGoalType string `json:"biddingStrategyGoalType,omitempty"`
}

// AdGroup is the ad group wire resource.
type AdGroup struct {
	ResourceName string `json:"resourceName,omitempty"`
	Name         string `json:"name,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Status       string `json:"status,omitempty"`
	Type         string `json:"type,omitempty"`
	CpcBidMicros int64  `json:"cpcBidMicros,omitempty"`
}

// AdGroupAd links an ad definition to an ad group.
type AdGroupAd struct {
	ResourceName string `json:"resourceName,omitempty"`
	AdGroup      string `json:"adGroup,omitempty"`
	Status       string `json:"status,omitempty"`
	Ad           *Ad    `json:"ad,omitempty"`
}

// Ad is the ad wire resource.
type Ad struct {
	ResourceName       string              `json:"resourceName,omitempty"`
	FinalURLs          []string            `json:"finalUrls,omitempty"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
}

// ResponsiveSearchAd holds the headline and description assets of a
// responsive search ad.
type ResponsiveSearchAd struct {
	Headlines    []TextAsset `json:"headlines,omitempty"`
	Descriptions []TextAsset `json:"descriptions,omitempty"`
	Path1        string      `json:"path1,omitempty"`
	Path2        string      `json:"path2,omitempty"`
}

// TextAsset is a single text asset of an ad.
type TextAsset struct {
	Text string `json:"text"`
}

// TextAssets wraps plain strings into text assets.
func TextAssets(texts []string) []TextAsset {
	assets := make([]TextAsset, len(texts))
	for i, t := range texts {
		assets[i] = TextAsset{Text: t}
	}
	return assets
}

// AdGroupCriterion is the ad group criterion wire resource. Keyword and
// demographic criteria share this shape.
type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	AdGroup      string       `json:"adGroup,omitempty"`
	Status       string       `json:"status,omitempty"`
	Negative     bool         `json:"negative,omitempty"`
	Keyword      *Keyword     `json:"keyword,omitempty"`
	AgeRange     *AgeRange    `json:"ageRange,omitempty"`
	Gender       *Gender      `json:"gender,omitempty"`
	IncomeRange  *IncomeRange `json:"incomeRange,omitempty"`
	CpcBidMicros int64        `json:"cpcBidMicros,omitempty"`
	BidModifier  float64      `json:"bidModifier,omitempty"`
}

// Keyword is a keyword criterion.
type Keyword struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType,omitempty"`
}

// AgeRange is an age range criterion.
type AgeRange struct {
	Type string `json:"type"`
}

// Gender is a gender criterion.
type Gender struct {
	Type string `json:"type"`
}

// IncomeRange is an income range criterion.
type IncomeRange struct {
	Type string `json:"type"`
}

// CampaignCriterion is the campaign criterion wire resource. Location,
// language and audience targets attach here.
type CampaignCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	Campaign     string       `json:"campaign,omitempty"`
	Negative     bool         `json:"negative,omitempty"`
	BidModifier  float64      `json:"bidModifier,omitempty"`
	Location     *Location    `json:"location,omitempty"`
	Language     *Language    `json:"language,omitempty"`
	UserList     *UserListRef `json:"userList,omitempty"`
	Keyword      *Keyword     `json:"keyword,omitempty"`
}

// Location references a geo target constant.
type Location struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

// Language references a language constant.
type Language struct {
	LanguageConstant string `json:"languageConstant"`
}

// UserListRef references a user list resource.
type UserListRef struct {
	UserList string `json:"userList"`
}

// ConversionAction is the conversion action wire resource.
type ConversionAction struct {
	ResourceName             string                    `json:"resourceName,omitempty"`
	Name                     string                    `json:"name,omitempty"`
	Category                 string                    `json:"category,omitempty"`
	Type                     string                    `json:"type,omitempty"`
	Status                   string                    `json:"status,omitempty"`
	CountingType             string                    `json:"countingType,omitempty"`
	ValueSettings            *ValueSettings            `json:"valueSettings,omitempty"`
	AttributionModelSettings *AttributionModelSettings `json:"attributionModelSettings,omitempty"`
}

// ValueSettings configures conversion values.
type ValueSettings struct {
	DefaultValue          float64 `json:"defaultValue,omitempty"`
	AlwaysUseDefaultValue *bool   `json:"alwaysUseDefaultValue,omitempty"`
}

// AttributionModelSettings configures conversion attribution.
type AttributionModelSettings struct {
	AttributionModel string `json:"attributionModel,omitempty"`
}

// UserList is the user list wire resource used for customer match and
// lookalike audiences.
type UserList struct {
	ResourceName       string             `json:"resourceName,omitempty"`
	Name               string             `json:"name,omitempty"`
	Description        string             `json:"description,omitempty"`
	MembershipLifeSpan int64              `json:"membershipLifeSpan,omitempty"`
	CrmBasedUserList   *CrmBasedUserList  `json:"crmBasedUserList,omitempty"`
	SimilarUserList    *SimilarUserList   `json:"similarUserList,omitempty"`
	RuleBasedUserList  *RuleBasedUserList `json:"ruleBasedUserList,omitempty"`
}

// CrmBasedUserList configures a customer match list.
type CrmBasedUserList struct {
	UploadKeyType  string `json:"uploadKeyType,omitempty"`
	DataSourceType string `json:"dataSourceType,omitempty"`
}

// SimilarUserList configures a lookalike list seeded from another list.
type SimilarUserList struct {
	SeedUserList string `json:"seedUserList,omitempty"`
}

// RuleBasedUserList configures a rule based audience.
type RuleBasedUserList struct {
	PrepopulationStatus string `json:"prepopulationStatus,omitempty"`
}

// Asset is the asset wire resource covering image, sitelink, callout,
// structured snippet and call assets.
type Asset struct {
	ResourceName           string                  `json:"resourceName,omitempty"`
	Name                   string                  `json:"name,omitempty"`
	ImageAsset             *ImageAsset             `json:"imageAsset,omitempty"`
	SitelinkAsset          *SitelinkAsset          `json:"sitelinkAsset,omitempty"`
	CalloutAsset           *CalloutAsset           `json:"calloutAsset,omitempty"`
	StructuredSnippetAsset *StructuredSnippetAsset `json:"structuredSnippetAsset,omitempty"`
	CallAsset              *CallAsset              `json:"callAsset,omitempty"`
	FinalURLs              []string                `json:"finalUrls,omitempty"`
}

// ImageAsset carries base64 encoded image data.
type ImageAsset struct {
	Data string `json:"data,omitempty"`
}

// SitelinkAsset is a sitelink extension asset.
type SitelinkAsset struct {
	LinkText     string `json:"linkText,omitempty"`
	Description1 string `json:"description1,omitempty"`
	Description2 string `json:"description2,omitempty"`
}

// CalloutAsset is a callout extension asset.
type CalloutAsset struct {
	CalloutText string `json:"calloutText,omitempty"`
}

// StructuredSnippetAsset is a structured snippet extension asset.
type StructuredSnippetAsset struct {
	Header string   `json:"header,omitempty"`
	Values []string `json:"values,omitempty"`
}

// CallAsset is a call extension asset.
type CallAsset struct {
	CountryCode string `json:"countryCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AssetGroup is the asset group wire resource for Performance Max.
type AssetGroup struct {
	ResourceName string   `json:"resourceName,omitempty"`
	Name         string   `json:"name,omitempty"`
	Campaign     string   `json:"campaign,omitempty"`
	Status       string   `json:"status,omitempty"`
	FinalURLs    []string `json:"finalUrls,omitempty"`
}

// CampaignAsset links an asset to a campaign for a given field type
// (SITELINK, CALLOUT, CALL, STRUCTURED_SNIPPET).
type CampaignAsset struct {
	ResourceName string `json:"resourceName,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Asset        string `json:"asset,omitempty"`
	FieldType    string `json:"fieldType,omitempty"`
}

// BiddingStrategy is the portfolio bidding strategy wire resource.
type BiddingStrategy struct {
	ResourceName            string                   `json:"resourceName,omitempty"`
	Name                    string                   `json:"name,omitempty"`
	TargetCpa               *TargetCpa               `json:"targetCpa,omitempty"`
	TargetRoas              *TargetRoas              `json:"targetRoas,omitempty"`
	MaximizeConversions     *MaximizeConversions     `json:"maximizeConversions,omitempty"`
	MaximizeConversionValue *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
}

// TargetCpa bids toward a target cost per acquisition in micros.
type TargetCpa struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,omitempty"`
}

// TargetRoas bids toward a target return on ad spend ratio.
type TargetRoas struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

// MaximizeConversions bids for the most conversions within budget.
type MaximizeConversions struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,omitempty"`
}

// MaximizeConversionValue bids for the highest conversion value.
type MaximizeConversionValue struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

// TargetSpend is the legacy maximize-clicks strategy; the empty object
// enables it on smart campaigns.
type TargetSpend struct{}

// Label is the label wire resource.
type Label struct {
	ResourceName string     `json:"resourceName,omitempty"`
	Name         string     `json:"name,omitempty"`
	TextLabel    *TextLabel `json:"textLabel,omitempty"`
}

// TextLabel styles a label.
type TextLabel struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Description     string `json:"description,omitempty"`
}

// CampaignLabel attaches a label to a campaign.
type CampaignLabel struct {
	Campaign string `json:"campaign,omitempty"`
	Label    string `json:"label,omitempty"`
}

// AdGroupLabel attaches a label to an ad group.
type AdGroupLabel struct {
	AdGroup string `json:"adGroup,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Experiment is the campaign experiment wire resource.
type Experiment struct {
	ResourceName string `json:"resourceName,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Suffix       string `json:"suffix,omitempty"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
}

// CustomerManagerLink is the manager link wire resource used to accept
// or decline link invitations.
type CustomerManagerLink struct {
	ResourceName string `json:"resourceName,omitempty"`
	Status       string `json:"status,omitempty"`
}
