package transport

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/luizaranda/go-request/pkg/telemetry"
	"github.com/luizaranda/go-request/pkg/telemetry/tracing"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const _requestTimeMetric = "request.transport.request.time"

// TraceDecorator returns a RoundTripDecorator recording a NewRelic external
// segment and a timing metric for every round trip.
func TraceDecorator() RoundTripDecorator {
	return func(base http.RoundTripper) http.RoundTripper {
		return &TracedRoundTripper{Transport: base}
	}
}

// TracedRoundTripper instruments outgoing requests.
//
// The metric goes through package telemetry, so the request context must hold
// a telemetry.Client for it to be sent anywhere; a target id set with package
// tracing makes it more granular. The NewRelic segment is only recorded when
// the context carries a NewRelic transaction.
type TracedRoundTripper struct {
	Transport http.RoundTripper
}

func (t *TracedRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	// StartExternalSegment mutates the request, adding distributed tracing
	// headers when a transaction is present.
	segment := newrelic.StartExternalSegment(nil, request)
	segment.Procedure = segmentProcedure(request)

	tags := tracedCommonTags(request)
	start := time.Now()

	response, err := t.Transport.RoundTrip(request)
	if err != nil {
		segment.AddAttribute("error", err.Error())
	}
	segment.Response = response
	segment.End()

	recordResponse(request.Context(), tags, start, response, err)

	return response, err
}

func tracedCommonTags(req *http.Request) []string {
	tags := []string{
		"technology:go",
		"method:" + strings.ToLower(req.Method),
	}

	if targetID := tracing.TargetID(req.Context()); targetID != "" {
		tags = append(tags, "target_id:"+telemetry.SanitizeMetricTagValue(targetID))
	}

	return tags
}

func segmentProcedure(request *http.Request) string {
	ctx := request.Context()

	if endpoint := tracing.EndpointTemplate(ctx); endpoint != "" {
		return request.Method + " " + endpoint
	}

	if targetID := tracing.TargetID(ctx); targetID != "" {
		return request.Method + " " + targetID
	}

	return ""
}

// StatusTags returns the status and status_class tags describing the outcome
// of a round trip: the status code, "timeout" or "error".
func StatusTags(statusCode int, err error) []string {
	status, statusClass := "error", "error"
	if err == nil {
		status = strconv.Itoa(statusCode)
		statusClass = strconv.Itoa(statusCode/100) + "xx"
	} else if os.IsTimeout(err) {
		status = "timeout"
	}
	return []string{"status:" + status, "status_class:" + statusClass}
}

func recordResponse(ctx context.Context, tags []string, start time.Time, response *http.Response, err error) {
	code := 0
	if response != nil {
		code = response.StatusCode
	}

	telemetry.Timing(ctx, _requestTimeMetric, time.Since(start), append(tags, StatusTags(code, err)...))
}
