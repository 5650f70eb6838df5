package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// MaxBodyBytes bounds every request body, JSON or form.
const MaxBodyBytes = 32 << 20

func init() {
	// keep JSON numbers as written so 1.0 and 1 can be told apart from 1.5
	binding.EnableDecoderUseNumber = true
}

// IsJSON reports whether the declared content type is JSON.
func IsJSON(ctx *gin.Context) bool {
	return ctx.ContentType() == binding.MIMEJSON
}

// Normalize reads the request body into a RawRequest. JSON content types are
// decoded as a single object; everything else is treated as form data.
// Bodies that cannot be parsed produce an empty request.
func Normalize(ctx *gin.Context) RawRequest {
	if IsJSON(ctx) {
		return normalizeJSON(ctx)
	}
	return RawRequest(FormFields(ctx))
}

func limitBody(ctx *gin.Context) {
	if ctx.Request.Body != nil {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodyBytes)
	}
}

func normalizeJSON(ctx *gin.Context) RawRequest {
	limitBody(ctx)
	raw := RawRequest{}
	var object map[string]interface{}
	if err := ctx.ShouldBindJSON(&object); err != nil {
		log.Warn().Err(err).Msg("Request body is not a JSON object, treating as empty")
		return raw
	}
	for key, value := range object {
		raw[key] = jsonScalar(value)
	}
	return raw
}

func jsonScalar(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return normalizeNumber(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// normalizeNumber renders integral JSON numbers such as 1.0 as "1" so they
// coerce to integer features the same way a form value would.
func normalizeNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

// FormFields returns the first value of every field in the request body.
// Query string parameters are not included.
func FormFields(ctx *gin.Context) map[string]string {
	limitBody(ctx)
	fields := map[string]string{}
	var err error
	if ctx.ContentType() == binding.MIMEMultipartPOSTForm {
		_, err = ctx.MultipartForm()
	} else {
		err = ctx.Request.ParseForm()
	}
	if err != nil {
		log.Warn().Err(err).Msg("Request form could not be parsed, treating as empty")
		return fields
	}
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields
}
