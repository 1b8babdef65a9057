package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/auth"
)

const maxBodySize = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// readBody - читает и парсит JSON тело запроса в структуру T
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		return body, fmt.Errorf("failed to read request body: unsupported content type %s", contentType)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if len(strings.TrimSpace(string(bodyBytes))) == 0 {
		return body, errEmptyBody
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to read request body application/json: %w", err)
	}

	return body, nil
}

// writeJSON - записывает ответ в формате JSON и добавляет заголовок Content-Type: application/json
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func writeAPIError(w http.ResponseWriter, apiErr *model.APIError) {
	http.Error(w, apiErr.Message, apiErr.Code)
}

// writeTransition - ответ смены статуса всегда в конверте {success, data | error}
func writeTransition(w http.ResponseWriter, order *model.OrderWithContext, apiErr *model.APIError) {
	if apiErr != nil {
		writeJSON(w, model.TransitionResult{Success: false, Error: apiErr.Message}, apiErr.Code)
		return
	}

	writeJSON(w, model.TransitionResult{Success: true, Data: order}, http.StatusOK)
}

// tokenInfo - данные токена из контекста; без них отвечаем 401
func tokenInfo(w http.ResponseWriter, r *http.Request) (*model.TokenInfo, bool) {
	info := auth.GetTokenInfo[model.TokenInfo](r)
	if info == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil, false
	}

	return info, true
}
