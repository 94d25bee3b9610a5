package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2/google"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"
	scope          = "https://www.googleapis.com/auth/spreadsheets"
)

// Client talks to the Sheets v4 values API. The store exposes exactly three
// primitives (get a range, update a range, append a row) and they are the
// core's entire dependency surface.
type Client struct {
	baseURL       string
	spreadsheetID string
	http          *http.Client
}

// NewClient builds a client authenticated as a service account. The
// credentials file is the JSON key downloaded from the cloud console.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	key, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading sheets credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(key, scope)
	if err != nil {
		return nil, fmt.Errorf("parsing sheets credentials: %w", err)
	}

	httpClient := conf.Client(ctx)
	httpClient.Timeout = 15 * time.Second

	return &Client{
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		http:          httpClient,
	}, nil
}

// NewClientWithHTTP skips service-account auth. Used by tests pointing at a
// fake values API.
func NewClientWithHTTP(baseURL, spreadsheetID string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		http:          httpClient,
	}
}

// SpreadsheetID returns the configured spreadsheet. Health reporting only.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

type valueRange struct {
	Range  string  `json:"range,omitempty"`
	Values [][]any `json:"values"`
}

// GetValues fetches all rows in an A1 range. Cells come back as the sheet's
// formatted text; ragged rows (trailing empty cells omitted) are returned
// as-is and padded by callers.
func (c *Client) GetValues(ctx context.Context, a1Range string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(a1Range))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets values.get: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decoding sheets response: %w", err)
	}

	rows := make([][]string, 0, len(vr.Values))
	for _, raw := range vr.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateValues overwrites the given A1 range with values, RAW (no formula
// interpretation, cell text lands exactly as sent).
func (c *Client) UpdateValues(ctx context.Context, a1Range string, values [][]string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(a1Range))
	return c.send(ctx, http.MethodPut, endpoint, values)
}

// AppendValues appends rows after the last data row of the range's table.
func (c *Client) AppendValues(ctx context.Context, a1Range string, values [][]string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(a1Range))
	return c.send(ctx, http.MethodPost, endpoint, values)
}

func (c *Client) send(ctx context.Context, method, endpoint string, values [][]string) error {
	payload := valueRange{Values: toAny(values)}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling sheets payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheets %s: %w", method, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("sheets API status %d: %s", resp.StatusCode, string(body))
}

func toAny(values [][]string) [][]any {
	out := make([][]any, len(values))
	for i, row := range values {
		converted := make([]any, len(row))
		for j, cell := range row {
			converted[j] = cell
		}
		out[i] = converted
	}
	return out
}
