package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/internal/screening/handler"
	"github.com/shubhamkumar755/AutismS/pkg/middleware"
)

const genericFailureMessage = "An error occurred during prediction"

type ScreeningController struct {
	handler            handler.ScreeningHandler
	exposeErrorDetails bool
}

// NewController builds the HTTP layer over h. When exposeErrorDetails is false
// internal failures are reported to clients by error code only.
func NewController(h handler.ScreeningHandler, exposeErrorDetails bool) *ScreeningController {
	return &ScreeningController{
		handler:            h,
		exposeErrorDetails: exposeErrorDetails,
	}
}

func (c *ScreeningController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "Backend is running",
		"message": "Autism Predictor Backend is active",
	})
}

// Test echoes the submitted form fields back to the caller.
func (c *ScreeningController) Test(ctx *gin.Context) {
	log.Debug().Str("content_type", ctx.ContentType()).Interface("headers", ctx.Request.Header).
		Msg("Test endpoint called")
	if handler.IsJSON(ctx) {
		log.Debug().Msg("Test endpoint received a JSON body, only form fields are echoed")
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Test endpoint working",
		"received_data": handler.FormFields(ctx),
	})
}

func (c *ScreeningController) Predict(ctx *gin.Context) {
	requestID := ctx.GetString(middleware.RequestIDKey)
	log.Debug().Str("content_type", ctx.ContentType()).Str(middleware.RequestIDKey, requestID).
		Msg("Prediction request received")
	raw := handler.Normalize(ctx)

	prediction, err := c.handler.Predict(raw)
	if err != nil {
		status, body := c.failure(err)
		log.Info().Str(middleware.RequestIDKey, requestID).Int("status", status).Str("error_code", handler.ErrorKind(err)).
			Msg("Prediction request failed")
		ctx.JSON(status, body)
		return
	}
	log.Info().Str(middleware.RequestIDKey, requestID).Str("fingerprint", prediction.Fingerprint).
		Str("prediction", prediction.Label).Msg("Prediction request served")
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"prediction": prediction.Label,
		"message":    "Prediction: " + prediction.Label,
	})
}

func (c *ScreeningController) failure(err error) (int, gin.H) {
	status := apperrors.StatusCode(err)

	var (
		missing     *apperrors.MissingFieldsError
		empty       *apperrors.EmptyFieldsError
		unavailable *apperrors.ModelUnavailableError
	)
	switch {
	case errors.As(err, &missing):
		return status, gin.H{
			"success":         false,
			"error":           missing.Error(),
			"message":         missing.Error(),
			"missing_fields":  missing.Fields,
			"received_fields": missing.ReceivedFields,
			"expected_fields": missing.ExpectedFields,
		}
	case errors.As(err, &empty):
		return status, gin.H{
			"success":      false,
			"error":        empty.Error(),
			"message":      empty.Error(),
			"empty_fields": empty.Fields,
		}
	case errors.As(err, &unavailable):
		log.Warn().Bool("model_loaded", unavailable.ModelLoaded).Bool("encoders_loaded", unavailable.EncodersLoaded).
			Msg("Prediction requested without loaded artifacts")
		return status, gin.H{
			"success":         false,
			"error":           unavailable.Error(),
			"message":         unavailable.Detail(),
			"model_loaded":    unavailable.ModelLoaded,
			"encoders_loaded": unavailable.EncodersLoaded,
		}
	}

	code := handler.ErrorKind(err)
	log.Error().Err(err).Str("error_code", code).Msg("Error during prediction")
	if !c.exposeErrorDetails {
		return status, gin.H{
			"success":    false,
			"error":      code,
			"error_code": code,
			"message":    genericFailureMessage,
		}
	}
	return status, gin.H{
		"success": false,
		"error":   err.Error(),
		"message": genericFailureMessage + ": " + err.Error(),
	}
}

func (c *ScreeningController) Health(ctx *gin.Context) {
	health := c.handler.Health()
	ctx.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"model_loaded":    health.ModelLoaded,
		"encoders_loaded": health.EncodersLoaded,
	})
}

func (c *ScreeningController) ModelInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.handler.ModelInfo())
}
