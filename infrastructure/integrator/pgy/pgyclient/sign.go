package pgyclient

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Alfabeto customizado do cabeçalho X-S. O 65º caractere é usado como
// preenchimento de blocos incompletos.
const xsAlphabet = "A4NjFqYu5wPHsO0XTdDgMa2r1ZQocVte9UJBvk6/7=yRnhISGKblCWi+LpfE8xzm3"

// Alfabeto customizado do cabeçalho X-S-Common, com preenchimento '=' padrão.
const commonAlphabet = "ZmserbBoHQtNP+wOcza/LpngG8yJq42KWYj0DSfdikx3VT16IlUAFM97hECvuRX5"

// Blob fixo do navegador emulado, embutido no X-S-Common como campo x8.
const browserFingerprint = "I38rHdgsjopgIvesdVwgIC+oIELmBZ5e3VwXLgFTIxS3bqwErFeexd0ekncAzMFYnqthIhJeSBMDKutRI3KsYorWHPtGrbV0P9WfIi/eWc6eYqtyQApPI37ekmR6QL+5Ii6sdneeSfqYHqwl2qt5B0DBIx+PGDi/sVtkIxdsxuwr4qtiIhuaIE3e3LV0I3VTIC7e0utl2ADmsLveDSKsSPw5IEvsiVtJOqw8BuwfPpdeTFWOIx4TIiu6ZPwrPut5IvlaLbgs3qtxIxes1VwHIkumIkIyejgsY/WTge7eSqte/D7sDcpipedeYrDtIC6eDVw2IENsSqtlnlSuNjVtIvoekqt3cZ7sVo4gIESyIhE2HfquIxhnqz8gIkIfoqwkICqWJ73sdlOeVPw3IvAe0fgedfVtIi5s3IcA2utAIiKsidvekZNeTPt4nAOeWPwEIvkLcA0eSuwuLB/sDqweI3RrIxE5Luwwaqw+rekhZANe1MNe0PwjIveskDoeSmrvIiAsfI/sxBidIkve3PwlIhQk2VtqOqt1IxesTVtjIk0siqwdIh/sjut3wutnsPw5ICclI3l4wA4jwIAsWVw4IE4qIhOsSqtZBbTt/A0ejjp1IkGPGutKoqw3I3OexqtYQL5eicAs3phwIhos3BOs3utscPwaICJsWPwUIigekeqLIxKsSedsSuwFIv3eiqt5Q0ioI3RPIx0ekl5s306sWjJe1qwMICQqIEqmqqw9IiHKIxOeSe88pMKeiVw6IxHIqPwmodveVANsxVtNaVtcI3PiIhp2mutyrqwHI3OsfI6e1uwmpqtnIhSNbutlIxcrm/c9Ii/sfdosS9geVPwttPtNIiVcI3AsfqtYIEAe0SYxIv+aez8GIvpBICde1PwSaqtz+qtMIkPIIhes3AAe6PwlprFMICF4yqtmZVtQIxDwI38ZIi+fIh/e3rvskbkUwVwGIvI68PwaoqwMIE3ekfPkIkZf/B7eDVtpHPtW+AiieduWIkMkguwRIx6sWeY9IxQMPuwqI3MeQPtSrPtWIEP6IvzlICzgZPwDIiLKIhosxuw6sjmFIEG4IC6sfn3s3qwXIv4BIELEalIYIvMS/lh4Ihes0L0eDqwJIE3sxqtwICWgIC/sSuw4Iv+bQqwlIC/sklWmpqteePtPIv6eYqtoIhAsS9bYIE5sDrKsVPtew00s0VwHoMdsfVt4IxesiYKeTVtoIhH3IkTvePwNObRtI36sduwsr/ee6SM7"

var commonEncoding = base64.NewEncoding(commonAlphabet)

var (
	a1CookieRegex = regexp.MustCompile(`a1=([^;]+)`)
	webIDRegex    = regexp.MustCompile(`(?i)webId=([a-f0-9]+)`)
)

// signHeaders calcula os cabeçalhos X-S, X-T e X-S-Common de uma requisição.
// O corpo assinado deve ser exatamente o corpo enviado.
func signHeaders(requestURL string, body []byte, cookies string, now time.Time) (map[string]string, error) {
	parsed, err := url.Parse(requestURL)
	if err != nil {
		return nil, err
	}

	// Dado assinado: caminho + query + corpo, na forma enviada
	signData := parsed.Path
	if parsed.RawQuery != "" {
		signData += "?" + parsed.RawQuery
	}
	if len(body) > 0 {
		signData += string(body)
	}

	timestamp := now.UnixMilli()
	digest := md5.Sum([]byte(strconv.FormatInt(timestamp, 10) + "test" + signData))

	a1 := ""
	if match := a1CookieRegex.FindStringSubmatch(cookies); match != nil {
		a1 = match[1]
	}

	return map[string]string{
		"X-S":        xsEncode(fmt.Sprintf("%x", digest)),
		"X-T":        strconv.FormatInt(timestamp, 10),
		"X-S-Common": xsCommon(a1),
	}, nil
}

// xsEncode aplica a variante base64 do X-S sobre a string do digest.
func xsEncode(s string) string {
	var b strings.Builder
	data := []byte(s)

	for i := 0; i < len(data); i += 3 {
		first := int(data[i])
		b.WriteByte(xsAlphabet[first>>2])

		if i+1 >= len(data) {
			b.WriteByte(xsAlphabet[(first&3)<<4])
			b.WriteByte(xsAlphabet[64])
			b.WriteByte(xsAlphabet[64])
			break
		}

		second := int(data[i+1])
		b.WriteByte(xsAlphabet[(first&3)<<4|second>>4])

		if i+2 >= len(data) {
			b.WriteByte(xsAlphabet[(second&15)<<2])
			b.WriteByte(xsAlphabet[64])
			break
		}

		third := int(data[i+2])
		b.WriteByte(xsAlphabet[(second&15)<<2|third>>6])
		b.WriteByte(xsAlphabet[third&63])
	}

	return b.String()
}

// xsCommon monta o cabeçalho X-S-Common a partir do cookie a1. A ordem das
// chaves no JSON faz parte do formato e não pode mudar.
func xsCommon(a1 string) string {
	fingerprintChecksum := int32(crc32.ChecksumIEEE([]byte(browserFingerprint)) ^ 0xEDB88320)

	encodedA1, _ := json.Marshal(a1)

	payload := fmt.Sprintf(
		`{"s0":5,"s1":"","x0":"1","x1":"4.1.4","x2":"Windows","x3":"ratlin-shell","x4":"0.0.971","x5":%s,"x6":"","x7":"","x8":"%s","x9":%d,"x10":0,"x11":"lite"}`,
		encodedA1,
		browserFingerprint,
		fingerprintChecksum,
	)

	return commonEncoding.EncodeToString([]byte(payload))
}

// randomizeWebID substitui o valor do cookie webId por um hexadecimal
// aleatório do mesmo comprimento, preservando o restante da string.
func randomizeWebID(cookies string) string {
	return webIDRegex.ReplaceAllStringFunc(cookies, func(match string) string {
		value := match[len("webId="):]

		var b strings.Builder
		b.WriteString("webId=")
		for range value {
			b.WriteByte("0123456789abcdef"[rand.Intn(16)])
		}
		return b.String()
	})
}
