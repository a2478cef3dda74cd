package fhir_spark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Client carries what every resource client shares: the registry base url,
// the bearer token and a single http.Client with the configured timeout.
type Client struct {
	baseUrl     string
	bearerToken string
	httpClient  *http.Client
}

func NewClient(baseUrl, bearerToken string, timeout time.Duration) *Client {
	return &Client{
		baseUrl:     strings.TrimRight(baseUrl, "/"),
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) ResourceUrl(resource string, segments ...string) string {
	parts := append([]string{c.baseUrl, resource}, segments...)
	return strings.Join(parts, "/")
}

func (c *Client) SearchUrl(resource string, params url.Values) string {
	if len(params) == 0 {
		return c.ResourceUrl(resource)
	}
	return c.ResourceUrl(resource) + "?" + params.Encode()
}

// Execute sends one request and returns the status code and full body.
// Transport failures come back as CustomError; any HTTP status is returned as-is.
func (c *Client) Execute(ctx context.Context, method, target string, payload []byte) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	if c.bearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return 0, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp.StatusCode, responseBody, nil
}

// OutcomeError turns an unexpected registry response into an error, preferring
// the first OperationOutcome diagnostics when the body carries one.
func OutcomeError(statusCode int, body []byte) error {
	diagnostics := gjson.GetBytes(body, "issue.0.diagnostics").String()
	if diagnostics != "" {
		return errors.New(diagnostics)
	}
	return fmt.Errorf("unexpected registry status %d", statusCode)
}

// IsNotFound treats both missing and deleted resources as absent.
func IsNotFound(statusCode int) bool {
	return statusCode == constvars.StatusNotFound || statusCode == constvars.StatusGone
}

// EntryResources returns the raw JSON of every searchset entry of the given
// resource type. Outcome entries mixed into the bundle are skipped.
func EntryResources(body []byte, resourceType string) [][]byte {
	var resources [][]byte
	for _, resource := range gjson.GetBytes(body, "entry.#.resource").Array() {
		if resource.Get("resourceType").String() != resourceType {
			continue
		}
		resources = append(resources, []byte(resource.Raw))
	}
	return resources
}
