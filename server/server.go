// Package server assembles repositories, services and controllers into an
// echo instance.
package server

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmbook/config"
	"farmbook/router"

	actCtrlImp "farmbook/pkg/activity/controllerImp"
	actRepoImp "farmbook/pkg/activity/repositoryImp"
	actSvcImp "farmbook/pkg/activity/serviceImp"

	advCtrlImp "farmbook/pkg/advisory/controllerImp"
	advRepoImp "farmbook/pkg/advisory/repositoryImp"
	advSvcImp "farmbook/pkg/advisory/serviceImp"

	"farmbook/pkg/ai"
	authCtrlImp "farmbook/pkg/auth/controllerImp"
	"farmbook/pkg/auth/session"

	cropCtrlImp "farmbook/pkg/crop/controllerImp"
	cropRepoImp "farmbook/pkg/crop/repositoryImp"
	cropSvcImp "farmbook/pkg/crop/serviceImp"

	farmCtrlImp "farmbook/pkg/farm/controllerImp"
	farmRepoImp "farmbook/pkg/farm/repositoryImp"
	farmSvcImp "farmbook/pkg/farm/serviceImp"

	fieldCtrlImp "farmbook/pkg/field/controllerImp"
	fieldRepoImp "farmbook/pkg/field/repositoryImp"
	fieldSvcImp "farmbook/pkg/field/serviceImp"

	healthCtrlImp "farmbook/pkg/health/controllerImp"
	"farmbook/pkg/ownership"
)

func New(cfg config.AppConfig, db *gorm.DB, llm ai.Client, sessions *session.Manager, log *zap.Logger) *echo.Echo {
	gate := ownership.New(db)

	farms := farmRepoImp.New(db)
	fields := fieldRepoImp.New(db)
	crops := cropRepoImp.New(db)
	acts := actRepoImp.New(db)
	advs := advRepoImp.New(db)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return router.New(e, router.Deps{
		Logger:          log,
		Sessions:        sessions,
		Gate:            gate,
		TrustProxy:      cfg.TrustProxyIdentity,
		StrictForbidden: cfg.StrictForbidden,

		Auth:       authCtrlImp.NewAuthController(sessions, cfg.EnableDevLogin, log),
		Farms:      farmCtrlImp.New(farmSvcImp.NewFarmService(farms, fields, cfg.CascadeDeletes, log)),
		Fields:     fieldCtrlImp.New(fieldSvcImp.NewFieldService(fields, cfg.CascadeDeletes)),
		Crops:      cropCtrlImp.New(cropSvcImp.NewCropService(crops)),
		Activities: actCtrlImp.New(actSvcImp.NewActivityService(acts, crops, gate)),
		Advisories: advCtrlImp.New(advSvcImp.NewAdvisoryService(advs, llm, gate, log)),
		Health:     healthCtrlImp.NewHealthCtrl(db, cfg.Provider()),
	})
}
