package pgyclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
)

// GetUserInfo busca os dados da conta autenticada, usado na validação de
// cookies. Este endpoint dispensa os cabeçalhos de assinatura.
func (c *PGYClient) GetUserInfo(ctx context.Context, cookies string) (*pgydomain.UserInfo, error) {
	requestURL := fmt.Sprintf("%s/api/solar/user/info", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, pgydomain.NewNetworkError(err)
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	req.Header.Set("Referer", "https://pgy.xiaohongshu.com/solar/pre-trade/home")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36")
	req.Header.Set("Cookie", cookies)
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			return nil, pgydomain.NewTimeoutError(err)
		}
		return nil, pgydomain.NewNetworkError(err)
	}
	defer resp.Body.Close()

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

	userInfo := &pgydomain.UserInfo{}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, userInfo); err != nil {
			return nil, pgydomain.NewParseError(err)
		}
	}

	return userInfo, nil
}
