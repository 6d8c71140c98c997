package dto

// ODPNode is a leaf of the hierarchy. Customers counts every attached
// customer regardless of status.
type ODPNode struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalPorts int    `json:"total_ports"`
	UsedPorts  int    `json:"used_ports"`
	Status     string `json:"status"`
	Customers  int64  `json:"customers"`
}

type ODCNode struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	TotalPorts int        `json:"total_ports"`
	UsedPorts  int        `json:"used_ports"`
	Status     string     `json:"status"`
	ODPs       []*ODPNode `json:"odps"`
}

type OLTNode struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	TotalPorts int        `json:"total_ports"`
	UsedPorts  int        `json:"used_ports"`
	Status     string     `json:"status"`
	ODCs       []*ODCNode `json:"odcs"`
}

type HierarchyResponse struct {
	Hierarchy []*OLTNode `json:"hierarchy"`
}

// Map point kinds.
const (
	PointOLT      = "olt"
	PointODC      = "odc"
	PointODP      = "odp"
	PointCustomer = "customer"
)

// MapPoint is one located element of the network map. ParentID is the
// feeding node: the OLT of an ODC, the ODC of an ODP, the ODP of a customer.
type MapPoint struct {
	Type      string  `json:"type"`
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
	ParentID  *uint   `json:"parent_id"`
}

type MapResponse struct {
	Points []*MapPoint `json:"points"`
}
