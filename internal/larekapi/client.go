// Package larekapi is the REST client for the storefront backend. It wraps
// the three boundary calls (list products, get product, submit order) and
// rewrites relative image paths to absolute CDN URLs before exposing products
// to the rest of the application.
package larekapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/weblarek/storefront/internal/domain/order"
	"github.com/weblarek/storefront/internal/domain/product"
)

// Failure kinds. Every error returned by the client wraps exactly one of
// these, so callers can classify with errors.Is. Failures are terminal per
// call: the client never retries.
var (
	// ErrNetwork covers transport errors and non-2xx responses.
	ErrNetwork = errors.New("network failure")
	// ErrDecode covers malformed response bodies.
	ErrDecode = errors.New("malformed response")
)

// Config holds the client construction parameters.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api".
	BaseURL string
	// CDNURL is prepended to relative image paths in product responses.
	CDNURL string
	// HTTPClient is used for all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client issues storefront API calls. It is stateless and safe for
// concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	cdnURL  string
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cdnURL:  cfg.CDNURL,
	}
}

// ListProducts fetches the whole catalog. Image paths are rewritten to
// absolute CDN URLs.
func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	body, err := c.get(ctx, "/product")
	if err != nil {
		return nil, err
	}

	var items []product.Product
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "items" {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			p, err := decodeProduct(d)
			if err != nil {
				return err
			}
			items = append(items, p)
			return nil
		})
	}); err != nil {
		return nil, errors.Wrapf(ErrDecode, "decode product list: %v", err)
	}

	for i := range items {
		items[i].Image = c.cdnURL + items[i].Image
	}
	return items, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (product.Product, error) {
	body, err := c.get(ctx, "/product/"+id)
	if err != nil {
		return product.Product{}, err
	}

	p, err := decodeProduct(jx.DecodeBytes(body))
	if err != nil {
		return product.Product{}, errors.Wrapf(ErrDecode, "decode product: %v", err)
	}
	p.Image = c.cdnURL + p.Image
	return p, nil
}

// SubmitOrder posts the order snapshot and returns the accepted order id and
// total.
func (c *Client) SubmitOrder(ctx context.Context, o order.Order) (order.Result, error) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("payment", func(e *jx.Encoder) { e.Str(string(o.Payment)) })
		e.Field("email", func(e *jx.Encoder) { e.Str(o.Email) })
		e.Field("phone", func(e *jx.Encoder) { e.Str(o.Phone) })
		e.Field("address", func(e *jx.Encoder) { e.Str(o.Address) })
		e.Field("total", func(e *jx.Encoder) { e.Num(jx.Num(o.Total.String())) })
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, id := range o.Items {
					e.Str(id)
				}
			})
		})
	})

	body, err := c.post(ctx, "/order", e.Bytes())
	if err != nil {
		return order.Result{}, err
	}

	var res order.Result
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			v, err := d.Str()
			res.ID = v
			return err
		case "total":
			v, err := decodeDecimal(d)
			res.Total = v
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return order.Result{}, errors.Wrapf(ErrDecode, "decode order result: %v", err)
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request GET %s", path)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "build request POST %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrNetwork, "%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrNetwork, "%s %s: read body: %v", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrNetwork, "%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}

func decodeProduct(d *jx.Decoder) (product.Product, error) {
	var p product.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			v, err := d.Str()
			p.ID = v
			return err
		case "title":
			v, err := d.Str()
			p.Title = v
			return err
		case "description":
			v, err := d.Str()
			p.Description = v
			return err
		case "image":
			v, err := d.Str()
			p.Image = v
			return err
		case "category":
			v, err := d.Str()
			p.Category = product.Category(v)
			return err
		case "price":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := decodeDecimal(d)
			if err != nil {
				return err
			}
			p.Price.Decimal = v
			p.Price.Valid = true
			return nil
		default:
			return d.Skip()
		}
	})
	return p, err
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Num()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(n.String())
}
