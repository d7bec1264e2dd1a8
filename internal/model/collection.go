// Package model defines the data structures for collection linting.
package model

import "encoding/json"

// Collection is the root of a Postman collection document. Only the subset of
// fields the rules read is typed; everything else a collection may carry is
// preserved as raw JSON so a fixed collection re-serializes faithfully.
type Collection struct {
	Info     Info              `json:"info"`
	Item     []Item            `json:"item"`
	Event    []Event           `json:"event,omitempty"`
	Variable json.RawMessage   `json:"variable,omitempty"`
	Auth     json.RawMessage   `json:"auth,omitempty"`
}

// Info holds collection-level metadata.
type Info struct {
	Name        string     `json:"name,omitempty"`
	Description LooseText  `json:"description,omitempty"`
	Schema      string     `json:"schema,omitempty"`
	PostmanID   string     `json:"_postman_id,omitempty"`
}

// LooseText is a string field that may also arrive as a richer JSON value
// (Postman descriptions can be objects). Anything that is not a plain string
// decodes to the empty string.
type LooseText string

// UnmarshalJSON accepts a JSON string and silently ignores any other shape.
func (t *LooseText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}

	*t = LooseText(s)

	return nil
}

// Item is a node in the collection tree: a request when Request is set, a
// folder when it has children and no request.
type Item struct {
	Name        string          `json:"name,omitempty"`
	Description LooseText       `json:"description,omitempty"`
	Request     *Request        `json:"request,omitempty"`
	Response    []Response      `json:"response,omitempty"`
	Event       []Event         `json:"event,omitempty"`
	Item        []Item          `json:"item,omitempty"`
	Auth        json.RawMessage `json:"auth,omitempty"`
}

// IsRequest reports whether the item is a request.
func (i *Item) IsRequest() bool {
	return i.Request != nil
}

// IsFolder reports whether the item is a folder.
func (i *Item) IsFolder() bool {
	return i.Request == nil && i.Item != nil
}

// Event is a named script hook ("test" or "prerequest") attached to an item.
type Event struct {
	Listen string `json:"listen"`
	Script Script `json:"script"`
}

// Script holds script source as an ordered sequence of lines.
type Script struct {
	Exec ScriptSource `json:"exec"`
	Type string       `json:"type,omitempty"`
}

// ScriptSource unmarshals the Postman "exec" field, which is usually an array
// of source lines but may be a single string. Non-string array entries are
// skipped rather than failing.
type ScriptSource []string

// UnmarshalJSON decodes an array of lines or a bare string.
func (s *ScriptSource) UnmarshalJSON(data []byte) error {
	var lines []json.RawMessage
	if err := json.Unmarshal(data, &lines); err == nil {
		out := make([]string, 0, len(lines))

		for _, raw := range lines {
			var line string
			if err := json.Unmarshal(raw, &line); err == nil {
				out = append(out, line)
			}
		}

		*s = out

		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = []string{single}
		return nil
	}

	*s = nil

	return nil
}

// Request describes the HTTP request attached to an item.
type Request struct {
	Method      string          `json:"method,omitempty"`
	URL         *URL            `json:"url,omitempty"`
	Header      []Header        `json:"header,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
	Auth        json.RawMessage `json:"auth,omitempty"`
	Description LooseText       `json:"description,omitempty"`
}

// Header is a single request header.
type Header struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// URL is either a raw string or a structured object in the document. The
// original shape is remembered so a fixed collection round-trips unchanged.
type URL struct {
	Raw      string          `json:"raw,omitempty"`
	Protocol string          `json:"protocol,omitempty"`
	Host     json.RawMessage `json:"host,omitempty"`
	Path     json.RawMessage `json:"path,omitempty"`
	Query    []QueryParam    `json:"query,omitempty"`
	Variable json.RawMessage `json:"variable,omitempty"`

	wasString bool
}

// urlObject mirrors URL without methods, to avoid recursive (un)marshalling.
type urlObject struct {
	Raw      string          `json:"raw,omitempty"`
	Protocol string          `json:"protocol,omitempty"`
	Host     json.RawMessage `json:"host,omitempty"`
	Path     json.RawMessage `json:"path,omitempty"`
	Query    []QueryParam    `json:"query,omitempty"`
	Variable json.RawMessage `json:"variable,omitempty"`
}

// UnmarshalJSON decodes either the string or the object form of a URL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = URL{Raw: s, wasString: true}
		return nil
	}

	var obj urlObject
	if err := json.Unmarshal(data, &obj); err != nil {
		*u = URL{}
		return nil
	}

	*u = URL{
		Raw:      obj.Raw,
		Protocol: obj.Protocol,
		Host:     obj.Host,
		Path:     obj.Path,
		Query:    obj.Query,
		Variable: obj.Variable,
	}

	return nil
}

// MarshalJSON re-serializes the URL in the shape it arrived.
func (u URL) MarshalJSON() ([]byte, error) {
	if u.wasString {
		return json.Marshal(u.Raw)
	}

	return json.Marshal(urlObject{
		Raw:      u.Raw,
		Protocol: u.Protocol,
		Host:     u.Host,
		Path:     u.Path,
		Query:    u.Query,
		Variable: u.Variable,
	})
}

// QueryParam is a single query parameter of a structured URL.
type QueryParam struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// Response is a saved response example attached to a request.
type Response struct {
	Name            string          `json:"name,omitempty"`
	Code            int             `json:"code,omitempty"`
	Status          string          `json:"status,omitempty"`
	Body            string          `json:"body,omitempty"`
	Header          json.RawMessage `json:"header,omitempty"`
	OriginalRequest json.RawMessage `json:"originalRequest,omitempty"`
}

// Clone returns a deep copy of the collection. The fixer only ever mutates a
// clone so the original stays valid for before/after comparison.
func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}

	out := &Collection{
		Info:     c.Info,
		Event:    cloneEvents(c.Event),
		Variable: cloneRaw(c.Variable),
		Auth:     cloneRaw(c.Auth),
	}
	out.Item = cloneItems(c.Item)

	return out
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}

	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i].clone()
	}

	return out
}

func (i Item) clone() Item {
	out := i
	out.Event = cloneEvents(i.Event)
	out.Item = cloneItems(i.Item)
	out.Auth = cloneRaw(i.Auth)

	if i.Request != nil {
		req := *i.Request
		req.Header = append([]Header(nil), i.Request.Header...)
		req.Body = cloneRaw(i.Request.Body)
		req.Auth = cloneRaw(i.Request.Auth)

		if i.Request.URL != nil {
			u := *i.Request.URL
			u.Host = cloneRaw(i.Request.URL.Host)
			u.Path = cloneRaw(i.Request.URL.Path)
			u.Variable = cloneRaw(i.Request.URL.Variable)
			u.Query = append([]QueryParam(nil), i.Request.URL.Query...)
			req.URL = &u
		}

		out.Request = &req
	}

	if i.Response != nil {
		out.Response = make([]Response, len(i.Response))
		for j := range i.Response {
			resp := i.Response[j]
			resp.Header = cloneRaw(i.Response[j].Header)
			resp.OriginalRequest = cloneRaw(i.Response[j].OriginalRequest)
			out.Response[j] = resp
		}
	}

	return out
}

func cloneEvents(events []Event) []Event {
	if events == nil {
		return nil
	}

	out := make([]Event, len(events))
	for i := range events {
		out[i] = events[i]
		out[i].Script.Exec = append(ScriptSource(nil), events[i].Script.Exec...)
	}

	return out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}

	return append(json.RawMessage(nil), raw...)
}
