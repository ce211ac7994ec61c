// Package contract is the shared description of the HTTP API: endpoint
// paths and methods, accepted inputs, and error shapes. The server registers
// its handlers from this table and pkg/client builds its requests from it.
package contract

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type Route struct {
	Name     string
	Method   string
	Path     string // echo-style template, placeholders are ":name"
	Success  int
	Failures []int
}

const (
	FarmsList   = "farms.list"
	FarmsCreate = "farms.create"
	FarmsGet    = "farms.get"
	FarmsUpdate = "farms.update"
	FarmsDelete = "farms.delete"

	FieldsList   = "fields.list"
	FieldsCreate = "fields.create"
	FieldsGet    = "fields.get"
	FieldsUpdate = "fields.update"
	FieldsDelete = "fields.delete"

	CropsList   = "crops.list"
	CropsCreate = "crops.create"
	CropsGet    = "crops.get"
	CropsUpdate = "crops.update"

	ActivitiesList   = "activities.list"
	ActivitiesCreate = "activities.create"
	ActivitiesExport = "activities.export"

	AdvisoriesList     = "advisories.list"
	AdvisoriesGenerate = "advisories.generate"

	AuthLogin  = "auth.login"
	AuthLogout = "auth.logout"
	AuthUser   = "auth.user"
)

var Routes = map[string]Route{
	FarmsList:   {Method: http.MethodGet, Path: "/api/farms", Success: http.StatusOK, Failures: []int{401}},
	FarmsCreate: {Method: http.MethodPost, Path: "/api/farms", Success: http.StatusCreated, Failures: []int{400, 401}},
	FarmsGet:    {Method: http.MethodGet, Path: "/api/farms/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	FarmsUpdate: {Method: http.MethodPut, Path: "/api/farms/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	FarmsDelete: {Method: http.MethodDelete, Path: "/api/farms/:id", Success: http.StatusNoContent, Failures: []int{400, 401, 404}},

	FieldsList:   {Method: http.MethodGet, Path: "/api/farms/:farmId/fields", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	FieldsCreate: {Method: http.MethodPost, Path: "/api/farms/:farmId/fields", Success: http.StatusCreated, Failures: []int{400, 401, 404}},
	FieldsGet:    {Method: http.MethodGet, Path: "/api/fields/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	FieldsUpdate: {Method: http.MethodPut, Path: "/api/fields/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	FieldsDelete: {Method: http.MethodDelete, Path: "/api/fields/:id", Success: http.StatusNoContent, Failures: []int{400, 401, 404}},

	CropsList:   {Method: http.MethodGet, Path: "/api/fields/:fieldId/crops", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	CropsCreate: {Method: http.MethodPost, Path: "/api/fields/:fieldId/crops", Success: http.StatusCreated, Failures: []int{400, 401, 404}},
	CropsGet:    {Method: http.MethodGet, Path: "/api/crops/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	CropsUpdate: {Method: http.MethodPut, Path: "/api/crops/:id", Success: http.StatusOK, Failures: []int{400, 401, 404}},

	ActivitiesList:   {Method: http.MethodGet, Path: "/api/activities", Success: http.StatusOK, Failures: []int{400, 401, 404}},
	ActivitiesCreate: {Method: http.MethodPost, Path: "/api/activities", Success: http.StatusCreated, Failures: []int{400, 401, 404}},
	ActivitiesExport: {Method: http.MethodGet, Path: "/api/activities/export", Success: http.StatusOK, Failures: []int{400, 401, 404}},

	AdvisoriesList:     {Method: http.MethodGet, Path: "/api/advisories", Success: http.StatusOK, Failures: []int{400, 401}},
	AdvisoriesGenerate: {Method: http.MethodPost, Path: "/api/advisories/generate", Success: http.StatusCreated, Failures: []int{400, 401, 404, 500}},

	AuthLogin:  {Method: http.MethodPost, Path: "/api/login", Success: http.StatusOK, Failures: []int{400}},
	AuthLogout: {Method: http.MethodPost, Path: "/api/logout", Success: http.StatusNoContent},
	AuthUser:   {Method: http.MethodGet, Path: "/api/auth/user", Success: http.StatusOK, Failures: []int{401}},
}

func init() {
	for name, r := range Routes {
		r.Name = name
		Routes[name] = r
	}
}

// Lookup returns the named route and panics on an unknown name; route names
// are compile-time constants so a miss is a programming error.
func Lookup(name string) Route {
	r, ok := Routes[name]
	if !ok {
		panic(fmt.Sprintf("contract: unknown route %q", name))
	}
	return r
}

// Names lists every route name in stable order.
func Names() []string {
	out := make([]string, 0, len(Routes))
	for name := range Routes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type Params map[string]any

// BuildURL substitutes each ":key" placeholder in path with the matching
// param. Params without a placeholder are ignored; placeholders without a
// param are left as they are.
func BuildURL(path string, params Params) string {
	if len(params) == 0 {
		return path
	}
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok {
			segs[i] = url.PathEscape(fmt.Sprint(v))
		}
	}
	return strings.Join(segs, "/")
}

// URL is BuildURL over a named route.
func (r Route) URL(params Params) string { return BuildURL(r.Path, params) }
