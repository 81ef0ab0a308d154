package ads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/teemow/googleads-mcp/internal/auth"
)

// stubTokenTransport answers the OAuth token endpoint with a canned
// token so the refresh-token flow never leaves the process.
type stubTokenTransport struct{}

func (t *stubTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host == "oauth2.googleapis.com" {
		body := `{"access_token":"test-access-token","token_type":"Bearer","expires_in":3600}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	}
	return http.DefaultTransport.RoundTrip(req)
}

func testConfig() *auth.Config {
	return &auth.Config{
		ClientID:        "test-client-id",
		ClientSecret:    "test-client-secret",
		RefreshToken:    "test-refresh-token",
		DeveloperToken:  "test-developer-token",
		LoginCustomerID: "999-777-1111",
	}
}

// newTestClient wires a client to an httptest server and a context whose
// oauth2 token fetches are served by the stub transport.
func newTestClient(t *testing.T, cfg *auth.Config, handler http.Handler) (*Client, context.Context) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := NewClient(auth.NewProvider(cfg),
		WithBaseURL(ts.URL),
		WithHTTPClient(ts.Client()),
	)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient,
		&http.Client{Transport: &stubTokenTransport{}})
	return client, ctx
}

func TestSearchStreamHeaders(t *testing.T) {
	var gotAuthorization, gotDeveloperToken, gotLoginCustomerID, gotPath string

	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotDeveloperToken = r.Header.Get("developer-token")
		gotLoginCustomerID = r.Header.Get("login-customer-id")
		gotPath = r.URL.Path

		_, _ = w.Write([]byte(`[{"results":[{"campaign":{"id":"123"}}]}]`))
	}))

	results, err := client.SearchStream(ctx, "111-222-3333", "SELECT campaign.id FROM campaign")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Bearer test-access-token", gotAuthorization)
	assert.Equal(t, "test-developer-token", gotDeveloperToken)
	assert.Equal(t, "9997771111", gotLoginCustomerID)
	assert.Equal(t, "/customers/1112223333/googleAds:searchStream", gotPath)
}

func TestSearchStreamEmptyResponse(t *testing.T) {
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	results, err := client.SearchStream(ctx, "111-222-3333", "SELECT campaign.id FROM campaign")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchStreamRequiresLoginCustomerID(t *testing.T) {
	requests := 0
	cfg := testConfig()
	cfg.LoginCustomerID = ""

	client, ctx := newTestClient(t, cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.SearchStream(ctx, "111-222-3333", "SELECT campaign.id FROM campaign")
	var configErr *auth.ConfigurationError
	require.ErrorAs(t, err, &configErr)

	// The precondition fails before any network I/O
	assert.Equal(t, 0, requests)
}

func TestSearchStreamRejectsInvalidCustomerID(t *testing.T) {
	requests := 0
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.SearchStream(ctx, "12345", "SELECT campaign.id FROM campaign")
	var validationErr *auth.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, requests)
}

func TestCreateCampaignTwoSteps(t *testing.T) {
	var bodies []string
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))

		if len(bodies) == 1 {
			_, _ = w.Write([]byte(`{"mutateOperationResponses":[{"campaignBudgetResult":{"resourceName":"customers/1112223333/campaignBudgets/789"}}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"mutateOperationResponses":[{"campaignResult":{"resourceName":"customers/1112223333/campaigns/456"}}]}`))
	}))

	campaignID, err := client.CreateCampaign(ctx, "111-222-3333", CampaignInput{
		Name:         "Spring Sale",
		BudgetAmount: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "456", campaignID)
	require.Len(t, bodies, 2)

	// First call creates the budget with the derived name and micros
	var budgetReq struct {
		MutateOperations []struct {
			CampaignBudgetOperation struct {
				Create CampaignBudget `json:"create"`
			} `json:"campaignBudgetOperation"`
		} `json:"mutateOperations"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &budgetReq))
	require.Len(t, budgetReq.MutateOperations, 1)
	assert.Equal(t, "Spring Sale Budget", budgetReq.MutateOperations[0].CampaignBudgetOperation.Create.Name)
	assert.Equal(t, int64(25_000_000), budgetReq.MutateOperations[0].CampaignBudgetOperation.Create.AmountMicros)

	// Second call references the budget and starts the campaign paused
	var campaignReq struct {
		MutateOperations []struct {
			CampaignOperation struct {
				Create Campaign `json:"create"`
			} `json:"campaignOperation"`
		} `json:"mutateOperations"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodies[1]), &campaignReq))
	require.Len(t, campaignReq.MutateOperations, 1)
	created := campaignReq.MutateOperations[0].CampaignOperation.Create
	assert.Equal(t, "customers/1112223333/campaignBudgets/789", created.CampaignBudget)
	assert.Equal(t, "PAUSED", created.Status)
	assert.Equal(t, "SEARCH", created.AdvertisingChannelType)
}

func TestCreateCampaignBudgetDependencyFailure(t *testing.T) {
	requests := 0
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"mutateOperationResponses":[]}`))
	}))

	_, err := client.CreateCampaign(ctx, "111-222-3333", CampaignInput{Name: "Orphan"})
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "campaign budget", depErr.Resource)

	// The campaign step is not attempted after the budget step fails
	assert.Equal(t, 1, requests)
}

func TestAPIErrorDiagnostics(t *testing.T) {
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	}))

	_, err := client.SearchStream(ctx, "111-222-3333", "SELECT campaign.id FROM campaign")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)

	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.True(t, apiErr.DeveloperTokenPresent)
	assert.True(t, apiErr.AuthorizationPresent)
	assert.Equal(t, "9997771111", apiErr.LoginCustomerID)
	assert.Contains(t, apiErr.Body, "PERMISSION_DENIED")

	// Diagnostics carry presence markers, never secret values
	msg := apiErr.Error()
	assert.Contains(t, msg, "developer-token=[PRESENT]")
	assert.Contains(t, msg, "authorization=[PRESENT]")
	assert.NotContains(t, msg, "test-developer-token")
	assert.NotContains(t, msg, "test-access-token")
}

func TestListAccessibleCustomers(t *testing.T) {
	client, ctx := newTestClient(t, testConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers:listAccessibleCustomers", r.URL.Path)
		_, _ = w.Write([]byte(`{"resourceNames":["customers/1112223333","customers/4445556666"]}`))
	}))

	names, err := client.ListAccessibleCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"customers/1112223333", "customers/4445556666"}, names)
}

func TestMutateRequiresLoginCustomerID(t *testing.T) {
	requests := 0
	cfg := testConfig()
	cfg.LoginCustomerID = ""

	client, ctx := newTestClient(t, cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.Mutate(ctx, "111-222-3333", []MutateOperation{{
		Campaign: Remove[Campaign]("customers/1112223333/campaigns/456"),
	}})
	var configErr *auth.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, 0, requests)
}
