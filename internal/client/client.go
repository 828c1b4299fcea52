// Package client es un cliente HTTP tipado para la API de records.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/records"
)

// DefaultTimeout se usa cuando no se inyecta un *http.Client.
const DefaultTimeout = 30 * time.Second

// APIError es una respuesta no 2xx de la API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("status=%d", e.Status)
	if e.Code != "" {
		msg += " code=" + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Client habla con la API bajo BaseURL (ej: http://localhost:3001/api).
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New crea un Client. httpClient nil usa uno con DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// List devuelve todos los records. 204 equivale a lista vacía.
func (c *Client) List(ctx context.Context) ([]record.Record, error) {
	var out []dto.RecordResponse
	if err := c.do(ctx, http.MethodGet, "/records", nil, &out); err != nil {
		return nil, err
	}
	return toRecords(out)
}

// Get devuelve el record id.
func (c *Client) Get(ctx context.Context, id int) (record.Record, error) {
	var out dto.RecordResponse
	if err := c.do(ctx, http.MethodGet, "/records/"+strconv.Itoa(id), nil, &out); err != nil {
		return record.Record{}, err
	}
	return toRecord(out)
}

// Search busca por nombre o apellido.
func (c *Client) Search(ctx context.Context, term string) ([]record.Record, error) {
	var out []dto.RecordResponse
	path := "/records/search?q=" + url.QueryEscape(term)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return toRecords(out)
}

// Create da de alta un record.
func (c *Client) Create(ctx context.Context, name, lastName string) (record.Record, error) {
	var out dto.RecordResponse
	body := dto.CreateRequest{Name: name, LastName: lastName}
	if err := c.do(ctx, http.MethodPost, "/records", body, &out); err != nil {
		return record.Record{}, err
	}
	return toRecord(out)
}

// Update modifica los campos no nil.
func (c *Client) Update(ctx context.Context, id int, name, lastName *string) (record.Record, error) {
	var out dto.RecordResponse
	body := dto.UpdateRequest{Name: name, LastName: lastName}
	if err := c.do(ctx, http.MethodPut, "/records/"+strconv.Itoa(id), body, &out); err != nil {
		return record.Record{}, err
	}
	return toRecord(out)
}

// Delete borra el record id y devuelve el mensaje de confirmación.
func (c *Client) Delete(ctx context.Context, id int) (string, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/records/"+strconv.Itoa(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}
	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func toRecord(r dto.RecordResponse) (record.Record, error) {
	return record.New(r.ID, r.Name, r.LastName)
}

func toRecords(rs []dto.RecordResponse) ([]record.Record, error) {
	out := make([]record.Record, 0, len(rs))
	for _, r := range rs {
		rec, err := toRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
