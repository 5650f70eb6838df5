package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shubhamkumar755/AutismS/internal/screening/artifact"
	"github.com/shubhamkumar755/AutismS/internal/screening/controller"
	"github.com/shubhamkumar755/AutismS/internal/screening/handler"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
	"github.com/shubhamkumar755/AutismS/pkg/httpframework"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := handler.NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1})
	Register(engine, controller.NewController(h, true))

	routes := map[string]string{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = r.Handler
	}
	assert.Len(t, routes, 5)
	for _, key := range []string{"GET /", "POST /test", "POST /predict", "GET /api/health", "GET /api/model/info"} {
		assert.Contains(t, routes, key)
	}
}

func TestInit(t *testing.T) {
	httpframework.ResetForTesting()
	httpframework.Init("test", false, true)
	defer httpframework.ResetForTesting()

	h := handler.NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1})
	Init(controller.NewController(h, true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	httpframework.Instance().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","model_loaded":false,"encoders_loaded":false}`, w.Body.String())
}
