package models

// Record carries the identity and audit timestamps shared by most
// resources. Wire names vary between endpoints, so both spellings decode.
type Record struct {
	ID        string     `json:"id"`
	CreatedAt Timestamp  `json:"created_at" alias:"timestamp_created"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty" alias:"timestamp_updated"`
	Extra     Extra      `json:"-"`
}

// ActionResult is the acknowledgement returned by action endpoints that do
// not echo a resource.
type ActionResult struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Extra   Extra  `json:"-"`
}

func (r *ActionResult) UnmarshalJSON(data []byte) error {
	return Decode("ActionResult", data, r)
}

// OK reports whether the server acknowledged the action. A response without
// a success flag counts as acknowledged.
func (r *ActionResult) OK() bool {
	return r.Success == nil || *r.Success
}
