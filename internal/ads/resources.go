package ads

import "strings"

// Resource name builders. Customer IDs are reduced to digits so both
// raw and display-formatted IDs are accepted; full validation happens in
// SearchStream and Mutate before any of these reach the wire.

// DigitsOnly strips every non-digit character. Used both for resource
// paths and for numeric IDs interpolated into GAQL conditions, where it
// doubles as an injection guard.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CampaignResourceName builds customers/{cid}/campaigns/{id}.
func CampaignResourceName(customerID, campaignID string) string {
	return "customers/" + DigitsOnly(customerID) + "/campaigns/" + DigitsOnly(campaignID)
}

// AdGroupResourceName builds customers/{cid}/adGroups/{id}.
func AdGroupResourceName(customerID, adGroupID string) string {
	return "customers/" + DigitsOnly(customerID) + "/adGroups/" + DigitsOnly(adGroupID)
}

// UserListResourceName builds customers/{cid}/userLists/{id}.
func UserListResourceName(customerID, userListID string) string {
	return "customers/" + DigitsOnly(customerID) + "/userLists/" + DigitsOnly(userListID)
}

// LabelResourceName builds customers/{cid}/labels/{id}.
func LabelResourceName(customerID, labelID string) string {
	return "customers/" + DigitsOnly(customerID) + "/labels/" + DigitsOnly(labelID)
}

// AssetResourceName builds customers/{cid}/assets/{id}.
func AssetResourceName(customerID, assetID string) string {
	return "customers/" + DigitsOnly(customerID) + "/assets/" + DigitsOnly(assetID)
}

// ConversionActionResourceName builds customers/{cid}/conversionActions/{id}.
func ConversionActionResourceName(customerID, conversionActionID string) string {
	return "customers/" + DigitsOnly(customerID) + "/conversionActions/" + DigitsOnly(conversionActionID)
}

// CampaignCriterionResourceName builds
// customers/{cid}/campaignCriteria/{campaignId}~{criterionId}.
func CampaignCriterionResourceName(customerID, campaignID, criterionID string) string {
	return "customers/" + DigitsOnly(customerID) + "/campaignCriteria/" +
		DigitsOnly(campaignID) + "~" + DigitsOnly(criterionID)
}

// RecommendationResourceName builds customers/{cid}/recommendations/{id}.
func RecommendationResourceName(customerID, recommendationID string) string {
	return "customers/" + DigitsOnly(customerID) + "/recommendations/" + recommendationID
}

// GeoTargetConstantResourceName builds geoTargetConstants/{id}.
func GeoTargetConstantResourceName(criterionID string) string {
	return "geoTargetConstants/" + DigitsOnly(criterionID)
}

// LanguageConstantResourceName builds languageConstants/{id}.
func LanguageConstantResourceName(criterionID string) string {
	return "languageConstants/" + DigitsOnly(criterionID)
}
