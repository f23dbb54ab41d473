package response

type ReconcileResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}
