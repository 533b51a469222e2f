package hospitalapi

import (
	"bytes"
	"context"
	"io"
	"medicare-frontend/internal/app/metrics"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// operation decides how a rejected response is classified.
type operation int

const (
	opRead operation = iota
	opWrite
	opLogin
)

// APIClient is the single transport shared by every resource client. It
// issues exactly one request per call: no retry, no cache, no timeout
// beyond the transport default.
type APIClient struct {
	BaseUrl    string
	Log        *zap.Logger
	HTTPClient *http.Client
}

// NewAPIClient builds the transport. jar may be nil; the console passes one
// so the API's login cookie follows the single signed-in user.
func NewAPIClient(baseUrl string, logger *zap.Logger, jar http.CookieJar) *APIClient {
	return &APIClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		Log:        logger,
		HTTPClient: &http.Client{Jar: jar},
	}
}

type call struct {
	caller          string
	resource        string
	method          string
	path            string
	payload         interface{}
	kind            operation
	fallbackMessage string
}

func (c *APIClient) do(ctx context.Context, in call) ([]byte, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	start := time.Now()
	c.Log.Info(in.caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, in.method),
		zap.String(constvars.LoggingEndpointKey, in.path),
	)

	body, statusCode, err := c.roundTrip(ctx, requestID, in)
	duration := time.Since(start)
	if err != nil {
		kind := exceptions.KindOf(err)
		metrics.RecordAPICall(in.resource, in.method, string(kind), duration)
		c.Log.Error(in.caller+" failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, in.method),
			zap.String(constvars.LoggingEndpointKey, in.path),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingErrorKindKey, string(kind)),
			zap.String(constvars.LoggingClientMessageKey, exceptions.ClientMessage(err)),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordAPICall(in.resource, in.method, "", duration)
	c.Log.Info(in.caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.Duration(constvars.LoggingDurationKey, duration),
	)
	return body, nil
}

func (c *APIClient) roundTrip(ctx context.Context, requestID string, in call) ([]byte, int, error) {
	var reqBody io.Reader
	if in.payload != nil {
		requestJSON, err := json.Marshal(in.payload)
		if err != nil {
			return nil, 0, exceptions.ErrCannotMarshalJSON(err)
		}
		reqBody = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.BaseUrl+in.path, reqBody)
	if err != nil {
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if reqBody != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, classifyStatus(in, resp.StatusCode, body)
	}
	return body, resp.StatusCode, nil
}

func classifyStatus(in call, statusCode int, body []byte) error {
	serverMessage := serverErrorMessage(body)
	clientError := statusCode >= 400 && statusCode < 500
	switch {
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrResourceNotFound(statusCode, serverMessage, in.resource)
	case clientError && in.kind == opLogin:
		return exceptions.ErrInvalidCredentials(statusCode, serverMessage)
	case clientError && in.kind == opWrite:
		return exceptions.ErrRejectedPayload(statusCode, serverMessage, in.fallbackMessage)
	}
	return exceptions.ErrHTTPStatus(statusCode, serverMessage, in.fallbackMessage, in.method, in.path)
}

// serverErrorMessage extracts the API's "error" field, if the body is a JSON
// object carrying one.
func serverErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	message := gjson.GetBytes(body, "error")
	if message.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(message.String())
}

// decodeEnvelope decodes the value under key, or the whole body when the
// API answered without that envelope.
func decodeEnvelope(body []byte, key string, out interface{}) error {
	if !gjson.ValidBytes(body) {
		return errInvalidJSON
	}
	raw := body
	if key == "" {
		return json.Unmarshal(raw, out)
	}
	if result := gjson.GetBytes(body, key); result.Exists() {
		raw = []byte(result.Raw)
	}
	return json.Unmarshal(raw, out)
}

// decodeList decodes the array under key; a missing or null envelope is an
// empty list.
func decodeList(body []byte, key string, out interface{}) error {
	if !gjson.ValidBytes(body) {
		return errInvalidJSON
	}
	result := gjson.GetBytes(body, key)
	if !result.Exists() || result.Type == gjson.Null {
		return nil
	}
	if !result.IsArray() {
		return errNotAnArray
	}
	return json.Unmarshal([]byte(result.Raw), out)
}
