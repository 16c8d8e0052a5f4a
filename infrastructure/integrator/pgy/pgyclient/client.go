package pgyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
	"github.com/vfg2006/kol-collector-api/internal/config"
)

// Client é o acesso assinado aos endpoints da plataforma Pugongying. Todas as
// chamadas recebem a string de cookies da conta em uso e devolvem o payload
// bruto do envelope, deixando a extração de campos para a camada de serviço.
type Client interface {
	GetBloggerInfo(ctx context.Context, userID, cookies string) (map[string]interface{}, error)
	GetDataSummary(ctx context.Context, userID string, business int, cookies string) (map[string]interface{}, error)
	GetNotesRate(ctx context.Context, userID string, params pgydomain.PerformanceParams, cookies string) (map[string]interface{}, error)
	GetCoreData(ctx context.Context, userID string, params pgydomain.PerformanceParams, cookies string) (map[string]interface{}, error)
	GetFansSummary(ctx context.Context, userID, cookies string) (map[string]interface{}, error)
	GetFansProfile(ctx context.Context, userID, cookies string) (map[string]interface{}, error)
	GetUserInfo(ctx context.Context, cookies string) (*pgydomain.UserInfo, error)
}

type PGYClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria uma nova instância do cliente assinado.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.PGY.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &PGYClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.PGY.BaseURL,
	}
}

// doRequest executa uma requisição assinada e devolve o payload do envelope.
// O status 406 vira um erro distinto, elegível para nova tentativa na camada
// de serviço.
func (c *PGYClient) doRequest(ctx context.Context, method, requestURL string, body []byte, cookies string) (json.RawMessage, error) {
	// Randomizar o webId antes de assinar: a assinatura cobre os cookies enviados
	randomizedCookies := randomizeWebID(cookies)

	headers, err := signHeaders(requestURL, body, randomizedCookies, time.Now())
	if err != nil {
		return nil, pgydomain.NewNetworkError(err)
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, pgydomain.NewNetworkError(err)
	}

	// Cabeçalhos esperados pela plataforma
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	req.Header.Set("Referer", "https://pgy.xiaohongshu.com/solar/pre-trade/home")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36")
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Cookie", randomizedCookies)
	req.Header.Set("Connection", "keep-alive")
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			return nil, pgydomain.NewTimeoutError(err)
		}
		return nil, pgydomain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotAcceptable {
		return nil, pgydomain.NewDataUnavailableError()
	}

	if resp.StatusCode != http.StatusOK {
		return nil, pgydomain.NewHTTPStatusError(resp.StatusCode)
	}

	var envelope pgydomain.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, pgydomain.NewParseError(err)
	}

	if !envelope.Usable() {
		return nil, pgydomain.NewLogicalError(envelope.Msg)
	}

	return envelope.Data, nil
}

// decodePayload decodifica o payload em um mapa preservando a forma lexical
// dos números, para que valores repassados à exportação não sofram
// arredondamento de ponto flutuante.
func decodePayload(raw json.RawMessage) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return map[string]interface{}{}, nil
	}

	payload := map[string]interface{}{}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, pgydomain.NewParseError(err)
	}

	// Payload "null" é tratado como vazio
	if payload == nil {
		payload = map[string]interface{}{}
	}

	return payload, nil
}
