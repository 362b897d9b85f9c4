// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const recordsPath = "/api/records/"

type httpRecordAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	logger *logger.Logger
}

// NewHTTPRecordAdapter constructs the REST implementation of
// [RecordAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the HTTP client with it and the
// request timeout. Bodies are signed with appCfg.HashKey when it is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRecordAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (RecordAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRecordAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [RecordAdapter] with GET /api/records/{id}.
func (h *httpRecordAdapter) Fetch(ctx context.Context, id string) (models.Record, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get(recordsPath + "{id}")
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: fetch record: %w", ErrTransport, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Record{}, err
	}

	var r models.Record
	if err = json.Unmarshal(resp.Body(), &r); err != nil {
		return models.Record{}, fmt.Errorf("decode fetch response: %w", err)
	}
	return r, nil
}

// Save implements [RecordAdapter].
func (h *httpRecordAdapter) Save(ctx context.Context, r models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(r)
	if err != nil {
		return models.Record{}, fmt.Errorf("encode record: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.signer.Enabled() {
		req.SetHeader(utils.HashHeader, h.signer.Sign(body))
	}

	var resp *resty.Response
	if r.ID == "" {
		resp, err = req.Post(recordsPath)
	} else {
		resp, err = req.SetPathParam("id", r.ID).Put(recordsPath + "{id}")
	}
	if err != nil {
		log.Err(err).Str("func", "httpRecordAdapter.Save").Msg("save request failed")
		return models.Record{}, fmt.Errorf("%w: save record: %w", ErrTransport, err)
	}
	if err = h.checkResponse(resp); err != nil {
		log.Debug().
			Str("func", "httpRecordAdapter.Save").
			Int("status", resp.StatusCode()).
			Msg("save rejected by server")
		return models.Record{}, err
	}

	var saved models.Record
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Record{}, fmt.Errorf("decode save response: %w", err)
	}
	return saved, nil
}

// List implements [RecordAdapter] with GET /api/records/?kind=.
func (h *httpRecordAdapter) List(ctx context.Context, kind models.RecordKind) ([]models.RecordSummary, error) {
	req := h.client.R().SetContext(ctx)
	if kind != "" {
		req.SetQueryParam("kind", string(kind))
	}

	resp, err := req.Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list records: %w", ErrTransport, err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var list models.RecordList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return list.Records, nil
}

// Version implements [RecordAdapter] with GET /api/version/.
func (h *httpRecordAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

// checkResponse maps error statuses and verifies the body signature of
// successful responses when both sides sign.
func (h *httpRecordAdapter) checkResponse(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	sig := resp.Header().Get(utils.HashHeader)
	if sig != "" && h.signer.Enabled() && !h.signer.Verify(resp.Body(), sig) {
		return ErrInvalidSignature
	}
	return nil
}
