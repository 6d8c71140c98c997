package dto

// StatsResponse is the dashboard snapshot.
type StatsResponse struct {
	Customers      CustomersSection      `json:"customers"`
	Revenue        RevenueSection        `json:"revenue"`
	Payments       PaymentsSection       `json:"payments"`
	Infrastructure InfrastructureSection `json:"infrastructure"`
	Packages       PackagesSection       `json:"packages"`
}

// CustomersSection counts customers; ByStatus covers every known status.
type CustomersSection struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// RevenueSection sums paid payments. ThisMonth is bounded by the current
// month in the business timezone.
type RevenueSection struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"this_month"`
}

type PaymentsSection struct {
	Pending int64 `json:"pending"`
	Overdue int64 `json:"overdue"`
}

type NodeCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type InfrastructureSection struct {
	OLTs NodeCounts `json:"olts"`
	ODCs NodeCounts `json:"odcs"`
	ODPs NodeCounts `json:"odps"`
}

type PackagesSection struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

func NewNodeCounts(active, inactive int64) NodeCounts {
	return NodeCounts{Total: active + inactive, Active: active, Inactive: inactive}
}
