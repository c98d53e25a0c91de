package client

import "context"

// Plan is one purchasable instance size from avail.linodeplans.
type Plan struct {
	ID    int     `json:"PLANID"`
	Label string  `json:"LABEL"`
	RAM   int     `json:"RAM"`
	Disk  int     `json:"DISK"`
	Xfer  int     `json:"XFER"`
	Cores int     `json:"CORES"`
	Price float64 `json:"PRICE"`
}

// Datacenter is one facility from avail.datacenters.
type Datacenter struct {
	ID       int    `json:"DATACENTERID"`
	Location string `json:"LOCATION"`
	Abbr     string `json:"ABBR"`
}

// ListPlans returns the plans currently offered by the provider.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doInto(ctx, "avail.linodeplans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListDatacenters returns the facilities instances can be placed in.
func (c *Client) ListDatacenters(ctx context.Context) ([]Datacenter, error) {
	var datacenters []Datacenter
	if err := c.doInto(ctx, "avail.datacenters", nil, &datacenters); err != nil {
		return nil, err
	}
	return datacenters, nil
}
