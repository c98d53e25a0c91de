package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// LinodeStatus is the run state the API reports for an instance.
type LinodeStatus int

// Status codes documented for the linode.list action.
const (
	StatusBootFailed   LinodeStatus = -2
	StatusBeingCreated LinodeStatus = -1
	StatusBrandNew     LinodeStatus = 0
	StatusRunning      LinodeStatus = 1
	StatusPoweredOff   LinodeStatus = 2
)

// String returns the human-readable name for the status.
func (s LinodeStatus) String() string {
	switch s {
	case StatusBootFailed:
		return "Boot Failed"
	case StatusBeingCreated:
		return "Being Created"
	case StatusBrandNew:
		return "Brand New"
	case StatusRunning:
		return "Running"
	case StatusPoweredOff:
		return "Powered Off"
	default:
		return fmt.Sprintf("Unknown (%d)", int(s))
	}
}

// Linode is one instance as reported by linode.list.
type Linode struct {
	ID           int          `json:"LINODEID"`
	Label        string       `json:"LABEL"`
	Status       LinodeStatus `json:"STATUS"`
	TotalRAM     int          `json:"TOTALRAM"`
	TotalHD      int          `json:"TOTALHD"`
	TotalXfer    int          `json:"TOTALXFER"`
	DatacenterID int          `json:"DATACENTERID"`
	PlanID       int          `json:"PLANID"`
	CreateDT     string       `json:"CREATE_DT"`
}

// Job identifies a queued host job returned by power actions.
type Job struct {
	ID int `json:"JobID"`
}

// ListLinodes returns every instance visible to the account.
func (c *Client) ListLinodes(ctx context.Context) ([]Linode, error) {
	var linodes []Linode
	if err := c.doInto(ctx, "linode.list", nil, &linodes); err != nil {
		return nil, err
	}
	return linodes, nil
}

// BootLinode queues a boot job for the instance.
func (c *Client) BootLinode(ctx context.Context, id int) (*Job, error) {
	return c.doJob(ctx, "linode.boot", id)
}

// RebootLinode queues a reboot job for the instance.
func (c *Client) RebootLinode(ctx context.Context, id int) (*Job, error) {
	return c.doJob(ctx, "linode.reboot", id)
}

// ShutdownLinode queues a shutdown job for the instance.
func (c *Client) ShutdownLinode(ctx context.Context, id int) (*Job, error) {
	return c.doJob(ctx, "linode.shutdown", id)
}

// doJob invokes a power action that returns a host job reference.
func (c *Client) doJob(ctx context.Context, action string, id int) (*Job, error) {
	params := url.Values{}
	params.Set("LinodeID", strconv.Itoa(id))

	var job Job
	if err := c.doInto(ctx, action, params, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// doInto invokes one action and decodes its DATA payload into target.
func (c *Client) doInto(ctx context.Context, action string, params url.Values, target interface{}) error {
	resp, err := c.Do(ctx, action, params)
	if err != nil {
		return err
	}
	if len(resp.Objects) == 0 || resp.Objects[0] == nil {
		return fmt.Errorf("%s returned no data", action)
	}
	if err := json.Unmarshal(resp.Objects[0], target); err != nil {
		return fmt.Errorf("error decoding %s data: %w", action, err)
	}
	return nil
}
