package pgyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
)

type coreDataRequest struct {
	UserID          string `json:"userId"`
	Business        string `json:"business"`
	NoteType        int    `json:"noteType"`
	DateType        int    `json:"dateType"`
	AdvertiseSwitch int    `json:"advertiseSwitch"`
}

// GetCoreData busca o resumo de medianas e custos estimados de uma combinação
// de parâmetros de desempenho. Neste endpoint o campo business viaja como
// string no corpo da requisição.
func (c *PGYClient) GetCoreData(ctx context.Context, userID string, params pgydomain.PerformanceParams, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/api/pgy/kol/data/core_data", c.baseURL)

	body, err := json.Marshal(coreDataRequest{
		UserID:          userID,
		Business:        strconv.Itoa(params.Business),
		NoteType:        params.NoteType,
		DateType:        params.DateType,
		AdvertiseSwitch: params.AdvertiseSwitch,
	})
	if err != nil {
		return nil, pgydomain.NewNetworkError(err)
	}

	raw, err := c.doRequest(ctx, http.MethodPost, requestURL, body, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
