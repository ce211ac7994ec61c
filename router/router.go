package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	activityCtrl "farmbook/pkg/activity/controller"
	advisoryCtrl "farmbook/pkg/advisory/controller"
	authCtrl "farmbook/pkg/auth/controller"
	"farmbook/pkg/auth/session"
	"farmbook/pkg/contract"
	cropCtrl "farmbook/pkg/crop/controller"
	farmCtrl "farmbook/pkg/farm/controller"
	fieldCtrl "farmbook/pkg/field/controller"
	"farmbook/pkg/middleware"
	"farmbook/pkg/ownership"
)

type Deps struct {
	Logger          *zap.Logger
	Sessions        *session.Manager
	Gate            ownership.Checker
	TrustProxy      bool
	StrictForbidden bool

	Auth       authCtrl.AuthController
	Farms      farmCtrl.FarmController
	Fields     fieldCtrl.FieldController
	Crops      cropCtrl.CropController
	Activities activityCtrl.ActivityController
	Advisories advisoryCtrl.AdvisoryController
	Health     interface{ Health(echo.Context) error }
}

// New registers every contract route on e. Paths come from contract.Routes,
// so the server and pkg/client cannot disagree on them.
func New(e *echo.Echo, d Deps) *echo.Echo {
	e.Validator = contract.NewValidator()
	e.HTTPErrorHandler = contract.ErrorHandler(d.Logger, d.StrictForbidden)
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.Session(d.Sessions, d.TrustProxy))
	e.Use(middleware.RequestLog(d.Logger))

	e.GET("/health", d.Health.Health)

	auth := middleware.RequireAuth()
	add := func(name string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
		r := contract.Lookup(name)
		e.Add(r.Method, r.Path, h, m...)
	}
	owns := func(kind ownership.Kind, param string) echo.MiddlewareFunc {
		return middleware.RequireOwner(d.Gate, kind, param)
	}

	// login and logout stay reachable without a session
	add(contract.AuthLogin, d.Auth.Login)
	add(contract.AuthLogout, d.Auth.Logout)
	e.GET(contract.Lookup(contract.AuthLogin).Path, d.Auth.Login)
	e.GET(contract.Lookup(contract.AuthLogout).Path, d.Auth.Logout)
	add(contract.AuthUser, d.Auth.WhoAmI, auth)

	add(contract.FarmsList, d.Farms.List, auth)
	add(contract.FarmsCreate, d.Farms.Create, auth)
	add(contract.FarmsGet, d.Farms.Get, auth, owns(ownership.Farm, "id"))
	add(contract.FarmsUpdate, d.Farms.Update, auth, owns(ownership.Farm, "id"))
	add(contract.FarmsDelete, d.Farms.Delete, auth, owns(ownership.Farm, "id"))

	add(contract.FieldsList, d.Fields.List, auth, owns(ownership.Farm, "farmId"))
	add(contract.FieldsCreate, d.Fields.Create, auth, owns(ownership.Farm, "farmId"))
	add(contract.FieldsGet, d.Fields.Get, auth, owns(ownership.Field, "id"))
	add(contract.FieldsUpdate, d.Fields.Update, auth, owns(ownership.Field, "id"))
	add(contract.FieldsDelete, d.Fields.Delete, auth, owns(ownership.Field, "id"))

	add(contract.CropsList, d.Crops.List, auth, owns(ownership.Field, "fieldId"))
	add(contract.CropsCreate, d.Crops.Create, auth, owns(ownership.Field, "fieldId"))
	add(contract.CropsGet, d.Crops.Get, auth, owns(ownership.Crop, "id"))
	add(contract.CropsUpdate, d.Crops.Update, auth, owns(ownership.Crop, "id"))

	// body and query scoped ids are checked by the services
	add(contract.ActivitiesList, d.Activities.List, auth)
	add(contract.ActivitiesCreate, d.Activities.Create, auth)
	add(contract.ActivitiesExport, d.Activities.Export, auth)

	add(contract.AdvisoriesList, d.Advisories.List, auth)
	add(contract.AdvisoriesGenerate, d.Advisories.Generate, auth)
	return e
}
