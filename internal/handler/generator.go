package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cyfrinair/cyfrinair-go/internal/crypto"
	"github.com/cyfrinair/cyfrinair-go/internal/model"
	"github.com/cyfrinair/cyfrinair-go/internal/service"
)

// Error codes returned in model.ErrorResponse.
const (
	CodeInvalidCount     = "InvalidCount"
	CodeInvalidParameter = "InvalidParameter"
	CodeInvalidOptions   = "InvalidOptions"
	CodeNotFound         = "NotFound"
	CodeInternal         = "InternalError"
)

// GeneratorHandler handles HTTP requests for password and passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandlePasswords handles GET /password and GET /password/{quantity} requests.
func (h *GeneratorHandler) HandlePasswords(w http.ResponseWriter, r *http.Request) {
	req, err := parsePasswordRequest(r)
	if err != nil {
		writeBadParameter(w, err)
		return
	}

	passwords, err := h.service.Passwords(req)
	if err != nil {
		writeGenerateError(w, err, "password", req.Quantity)
		return
	}

	slog.Debug("passwords generated",
		"quantity", len(passwords),
		"length", optional(req.Length),
		"digits", optional(req.Digits),
		"symbols", optional(req.Symbols),
		"ambiguous", optional(req.Ambiguous),
	)
	writeSecrets(w, r, passwords)
}

// HandlePassphrases handles GET /passphrase and GET /passphrase/{quantity} requests.
func (h *GeneratorHandler) HandlePassphrases(w http.ResponseWriter, r *http.Request) {
	req, err := parsePassphraseRequest(r)
	if err != nil {
		writeBadParameter(w, err)
		return
	}

	phrases, err := h.service.Passphrases(req)
	if err != nil {
		writeGenerateError(w, err, "passphrase", req.Quantity)
		return
	}

	slog.Debug("passphrases generated",
		"quantity", len(phrases),
		"words", optional(req.Words),
		"casing", optional(req.Casing),
		"digit", optional(req.Digit),
	)
	writeSecrets(w, r, phrases)
}

// HandleGUID handles GET /guid requests.
func HandleGUID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, uuid.NewString())
}

func parsePasswordRequest(r *http.Request) (model.PasswordRequest, error) {
	var req model.PasswordRequest
	var err error
	q := r.URL.Query()

	if req.Quantity, err = quantityParam(r); err != nil {
		return req, err
	}
	if req.Length, err = queryInt(q, "length"); err != nil {
		return req, err
	}
	if req.Digits, err = queryBool(q, "digits"); err != nil {
		return req, err
	}
	if req.Symbols, err = queryBool(q, "symbols"); err != nil {
		return req, err
	}
	if req.Ambiguous, err = queryBool(q, "ambiguous"); err != nil {
		return req, err
	}
	return req, nil
}

func parsePassphraseRequest(r *http.Request) (model.PassphraseRequest, error) {
	var req model.PassphraseRequest
	var err error
	q := r.URL.Query()

	if req.Quantity, err = quantityParam(r); err != nil {
		return req, err
	}
	if req.Words, err = queryInt(q, "words"); err != nil {
		return req, err
	}
	req.Separator = queryString(q, "separator")
	req.Casing = queryString(q, "casing")
	req.Digit = queryString(q, "digit")
	return req, nil
}

// errQuantityNotInteger marks a {quantity} path segment that is not a number.
var errQuantityNotInteger = errors.New("quantity must be a whole number")

func quantityParam(r *http.Request) (*int, error) {
	v := chi.URLParam(r, "quantity")
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if errors.Is(err, strconv.ErrRange) {
		// Atoi clamps to the int range, which the service then rejects
		// with the usual bounds message.
		return &n, nil
	}
	if err != nil {
		return nil, errQuantityNotInteger
	}
	return &n, nil
}

func queryInt(q url.Values, key string) (*int, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%s must be a whole number", key)
	}
	return &n, nil
}

func queryBool(q url.Values, key string) (*bool, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", key)
	}
	return &b, nil
}

func queryString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func writeBadParameter(w http.ResponseWriter, err error) {
	if errors.Is(err, errQuantityNotInteger) {
		writeError(w, http.StatusBadRequest, CodeInvalidCount, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, CodeInvalidParameter, err.Error())
}

func writeGenerateError(w http.ResponseWriter, err error, kind string, quantity *int) {
	switch {
	case errors.Is(err, crypto.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, CodeInvalidCount, quantityMessage(kind, quantity))
	case errors.Is(err, crypto.ErrInvalidOptions):
		writeError(w, http.StatusBadRequest, CodeInvalidOptions, err.Error())
	default:
		slog.Error("generation failed", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func quantityMessage(kind string, quantity *int) string {
	if quantity != nil && *quantity < 1 {
		return fmt.Sprintf("You must generate at least one %s.", kind)
	}
	return fmt.Sprintf("You can only generate up to %d %ss at a time.", crypto.MaxQuantity, kind)
}

// writeSecrets writes one secret per line when the client asks for
// text/plain, and a JSON array otherwise.
func writeSecrets(w http.ResponseWriter, r *http.Request, secrets []string) {
	w.Header().Set("Cache-Control", "no-store")

	if !prefersText(r) {
		writeJSON(w, http.StatusOK, secrets)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	for _, s := range secrets {
		io.WriteString(w, s+"\n")
	}
}

func prefersText(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "application/json")
}

func optional[T any](p *T) any {
	if p == nil {
		return "default"
	}
	return *p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: msg})
}
