package filterapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Ciztek/pwe/metrics"
	"github.com/Ciztek/pwe/schema"
)

const (
	// DefaultEndpoint - where the filter backend listens when nothing is configured
	DefaultEndpoint = "http://127.0.0.1:8000"

	logPrefix = "filterapi"

	kindDay    = "day"
	kindRange  = "range"
	kindPlaces = "places"
)

var (
	ErrBadStatus = fmt.Errorf("filter api returned a non-ok status")
)

// Client - data access to the covid filter backend
type Client interface {
	// Day returns the totals of one place on one day. A backend 404 means
	// no report exists and yields (nil, nil).
	Day(ctx context.Context, date, place string) (*schema.DataPoint, error)

	// Range returns the summed totals of one place over an inclusive date
	// range. A backend 404 yields (nil, nil).
	Range(ctx context.Context, startDate, endDate, place string) (*schema.DataPoint, error)

	// Places returns the backend place hierarchy.
	Places(ctx context.Context) (*schema.PlaceTree, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

func (c *client) Day(ctx context.Context, date, place string) (*schema.DataPoint, error) {
	values := url.Values{}
	values.Set("date", date)
	if place != "" {
		values.Set("country", place)
	}

	var point schema.DataPoint
	found, err := c.getJSON(ctx, kindDay, "/filter/data", values, &point)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &point, nil
}

func (c *client) Range(ctx context.Context, startDate, endDate, place string) (*schema.DataPoint, error) {
	values := url.Values{}
	values.Set("start_date", startDate)
	values.Set("end_date", endDate)
	if place != "" {
		values.Set("country", place)
	}

	var point schema.DataPoint
	found, err := c.getJSON(ctx, kindRange, "/filter/data", values, &point)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &point, nil
}

func (c *client) Places(ctx context.Context) (*schema.PlaceTree, error) {
	var tree schema.PlaceTree
	found, err := c.getJSON(ctx, kindPlaces, "/filter/places", url.Values{}, &tree)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, ErrBadStatus
	}

	return &tree, nil
}

// getJSON performs one GET against the backend and decodes the body into out.
// It reports found=false without an error when the backend answers 404.
func (c *client) getJSON(ctx context.Context, kind, path string, values url.Values, out interface{}) (bool, error) {
	query := c.endpoint + path
	if len(values) > 0 {
		query = query + "?" + values.Encode()
	}

	metrics.FilterRequestsTotal.WithLabelValues(kind).Inc()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if nil != err {
		metrics.FilterFailuresTotal.WithLabelValues(kind).Inc()
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if nil != err {
		metrics.FilterFailuresTotal.WithLabelValues(kind).Inc()
		log.WithFields(log.Fields{"prefix": logPrefix, "url": query, "error": err}).Error("query filter api")
		return false, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	metrics.FilterDurationMs.WithLabelValues(kind).Observe(float64(time.Since(start).Milliseconds()))
	if nil != err {
		metrics.FilterFailuresTotal.WithLabelValues(kind).Inc()
		return false, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		metrics.FilterFailuresTotal.WithLabelValues(kind).Inc()
		log.WithFields(log.Fields{"prefix": logPrefix, "url": query, "status": resp.StatusCode}).Error("query filter api")
		return false, ErrBadStatus
	}

	if err := json.Unmarshal(d, out); nil != err {
		metrics.FilterFailuresTotal.WithLabelValues(kind).Inc()
		return false, err
	}

	return true, nil
}

// New - filter backend client over the given http client
func New(endpoint string, httpClient *http.Client) Client {
	e := DefaultEndpoint
	if endpoint != "" {
		e = endpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		endpoint:   e,
		httpClient: httpClient,
	}
}
