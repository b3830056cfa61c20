package models

// APIMessage is a single entry of the errors or messages arrays carried by
// every Cloudflare v4 response envelope.
type APIMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ResultInfo holds pagination details returned with list endpoints.
type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// APIResponse is the envelope wrapping every Cloudflare v4 API response.
//
// Success=false means the service understood the request but rejected it;
// the reason is reported in Errors (which may be empty).
type APIResponse[T any] struct {
	Success    bool         `json:"success"`
	Errors     []APIMessage `json:"errors"`
	Messages   []APIMessage `json:"messages"`
	Result     T            `json:"result"`
	ResultInfo *ResultInfo  `json:"result_info,omitempty"`
}
