package ads

import (
	"context"
	"fmt"
	"sort"

	"github.com/teemow/googleads-mcp/internal/logging"
)

// GetCustomerInfo fetches the descriptive fields of a single customer
// account.
func (c *Client) GetCustomerInfo(ctx context.Context, customerID string) (*CustomerInfo, error) {
	query := NewQuery("customer",
		"customer.id",
		"customer.descriptive_name",
		"customer.currency_code",
		"customer.time_zone",
		"customer.manager",
	).Limit(1)

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	info := &CustomerInfo{CurrencyCode: "USD"}
	if len(rows) > 0 {
		customer := rowMap(rows[0], "customer")
		info.ID = rowString(customer, "id")
		info.DescriptiveName = rowString(customer, "descriptiveName")
		if code := rowString(customer, "currencyCode"); code != "" {
			info.CurrencyCode = code
		}
		info.TimeZone = rowString(customer, "timeZone")
		info.Manager = rowBool(customer, "manager")
	}
	return info, nil
}

// ListAccounts lists all accessible customer accounts with their
// details. Accounts whose details cannot be read (typically manager
// accounts without direct access) are listed with basic placeholder
// info instead of failing the whole listing.
func (c *Client) ListAccounts(ctx context.Context) ([]CustomerInfo, error) {
	resourceNames, err := c.ListAccessibleCustomers(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]CustomerInfo, 0, len(resourceNames))
	for _, resourceName := range resourceNames {
		customerID := lastPathSegment(resourceName)
		info, err := c.GetCustomerInfo(ctx, customerID)
		if err != nil {
			c.logger.Warn("cannot access customer details, using basic info",
				logging.Operation("listAccounts"),
				logging.CustomerHash(customerID),
				logging.Err(err))
			customers = append(customers, CustomerInfo{
				ID:              customerID,
				DescriptiveName: fmt.Sprintf("Customer %s", customerID),
				CurrencyCode:    "USD",
				Manager:         false,
			})
			continue
		}
		customers = append(customers, *info)
	}
	return customers, nil
}

// GetAccountHierarchy returns the manager hierarchy under the given
// root account, up to the requested depth.
func (c *Client) GetAccountHierarchy(ctx context.Context, rootCustomerID string, maxDepth int) ([]AccountNode, error) {
	if maxDepth <= 0 {
		maxDepth = 2
	}

	query := NewQuery("customer_client",
		"customer_client.id",
		"customer_client.descriptive_name",
		"customer_client.manager",
		"customer_client.level",
	).Wheref("customer_client.level <= %d", maxDepth).
		OrderBy("customer_client.level")

	rows, err := c.SearchStream(ctx, rootCustomerID, query.String())
	if err != nil {
		return nil, err
	}

	nodes := make([]AccountNode, 0, len(rows))
	for _, row := range rows {
		client := rowMap(row, "customerClient")
		nodes = append(nodes, AccountNode{
			CustomerID:      rowString(client, "id"),
			DescriptiveName: rowString(client, "descriptiveName"),
			Manager:         rowBool(client, "manager"),
			Level:           int(rowInt64(client, "level")),
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Level < nodes[j].Level })
	return nodes, nil
}

// ManagerLinkInvitation is a pending or resolved manager link.
type ManagerLinkInvitation struct {
	ResourceName    string `json:"resourceName"`
	ManagerCustomer string `json:"managerCustomer"`
	Status          string `json:"status"`
}

// ListManagerLinkInvitations lists manager link invitations for the
// given account.
func (c *Client) ListManagerLinkInvitations(ctx context.Context, customerID string) ([]ManagerLinkInvitation, error) {
	query := NewQuery("customer_manager_link",
		"customer_manager_link.resource_name",
		"customer_manager_link.manager_customer",
		"customer_manager_link.status",
	)

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	links := make([]ManagerLinkInvitation, 0, len(rows))
	for _, row := range rows {
		link := rowMap(row, "customerManagerLink")
		links = append(links, ManagerLinkInvitation{
			ResourceName:    rowString(link, "resourceName"),
			ManagerCustomer: rowString(link, "managerCustomer"),
			Status:          rowString(link, "status"),
		})
	}
	return links, nil
}

// UpdateManagerLinkStatus accepts or declines a manager link invitation
// by setting its status (ACTIVE to accept, REFUSED to decline).
func (c *Client) UpdateManagerLinkStatus(ctx context.Context, customerID, linkResourceName, status string) error {
	operations := []MutateOperation{{
		CustomerManagerLink: Update(&CustomerManagerLink{
			ResourceName: linkResourceName,
			Status:       status,
		}, "status"),
	}}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return err
	}
	if len(response.MutateOperationResponses) == 0 || response.MutateOperationResponses[0].CustomerManagerLinkResult == nil {
		return fmt.Errorf("updateManagerLinkStatus: no result returned")
	}
	return nil
}
