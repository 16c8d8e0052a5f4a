package exporting

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/kol-collector-api/internal/domain"
)

// Cabeçalhos fixos da planilha, na ordem das colunas. A grafia de cada
// rótulo é estável porque planilhas antigas são comparadas por coluna.
var baseHeaders = []string{
	"博主主页", "达人 ID", "蒲公英主页", "小红书主页",
	"昵称", "健康等级", "性别", "小红书号", "地理位置",
	"粉丝数量", "获赞与收藏", "合作报价-图文笔记",
	"合作报价-视频笔记", "合作报价-最低报价",
	"签约机构", "内容标签", "合作行业",
	"发布笔记", "内容类目", "数据更新时间",
	"数据概览-笔记数据-日常笔记-曝光中位数", "数据概览-笔记数据-日常笔记-阅读中位数", "数据概览-笔记数据-日常笔记-互动中位数",
	"数据概览-笔记数据-合作笔记-曝光中位数", "数据概览-合作笔记-阅读中位数", "数据概览-笔记数据-合作笔记-互动中位数",
	"数据概览-笔记数据-预估CPM(图文)", "数据概览-笔记数据-预估CPM(视频)",
	"数据概览-笔记数据-预估阅读单价(图文)", "数据概览-笔记数据-预估阅读单价(视频)",
	"数据概览-笔记数据-预估互动单价(图文)", "数据概览-笔记数据-预估互动单价(视频)",
	"数据概览-笔记数据-预估外溢进店单价(图文)", "数据概览-笔记数据-预估外溢进店单价(视频)",
	"近7天活跃天数", "邀约48小时回复率", "粉丝量变化幅度",
}

// Sub-campos de desempenho antes do detalhamento por fonte de tráfego.
var performanceSubFields = []string{
	"笔记数", "内容类目及占比",
	"曝光中位数", "阅读中位数", "互动中位数",
	"中位点赞量", "中位收藏量", "中位评论量", "中位分享量", "中位关注量",
	"互动率", "图文3秒阅读率", "千赞笔记比例", "百赞笔记比例",
	"预估CPM", "预估阅读单价", "预估互动单价",
}

var trafficSourceSubFields = []string{
	"阅读量来源-发现页", "阅读量来源-搜索页", "阅读量来源-关注页",
	"阅读量来源-博主个人页", "阅读量来源-附近页", "阅读量来源-其他",
	"曝光量来源-发现页", "曝光量来源-搜索页", "曝光量来源-关注页",
	"曝光量来源-博主个人页", "曝光量来源-附近页", "曝光量来源-其他",
}

var fansMetricsHeaders = []string{
	"粉丝指标-粉丝增量", "粉丝指标-粉丝量变化幅度", "粉丝指标-活跃粉丝占比",
	"粉丝指标-阅读粉丝占比", "粉丝指标-互动粉丝占比", "粉丝指标-下单粉丝占比",
}

var fansProfileHeaders = []string{
	"粉丝画像-性别分布", "粉丝画像-年龄分布", "粉丝画像-地域分布-按省份",
	"粉丝画像-地域分布-按城市", "粉丝画像-用户设备分布", "粉丝画像-用户兴趣",
}

// truthy segue a mesma noção de valor significativo dos extratores: nulos,
// strings vazias e zeros numéricos viram o valor padrão.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case float64:
		return value != 0
	case int:
		return value != 0
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	case bool:
		return value
	default:
		return true
	}
}

func cellOr(record domain.FlatRecord, key string, fallback interface{}) interface{} {
	if v, ok := record[key]; ok && truthy(v) {
		return v
	}
	return fallback
}

// performanceFieldHeaders gera os cabeçalhos de uma combinação de desempenho.
// O campo de transbordo para loja só existe nas notas de cooperação.
func performanceFieldHeaders(fieldPrefix string) []string {
	headers := make([]string, 0, len(performanceSubFields)+1+len(trafficSourceSubFields))

	for _, sub := range performanceSubFields {
		headers = append(headers, fieldPrefix+"-"+sub)
	}

	if strings.Contains(fieldPrefix, "合作笔记") {
		headers = append(headers, fieldPrefix+"-外溢进店中位数")
	}

	for _, sub := range trafficSourceSubFields {
		headers = append(headers, fieldPrefix+"-"+sub)
	}

	return headers
}

func performanceFieldValues(record domain.FlatRecord, fieldPrefix string) []interface{} {
	headers := performanceFieldHeaders(fieldPrefix)

	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, cellOr(record, header, ""))
	}

	return values
}

// fansProfileEntry é um par nome/percentual extraído de uma distribuição.
type fansProfileEntry struct {
	Name  string
	Value string
}

var fansProfilePartRegex = regexp.MustCompile(`^(.+?)\s*(\d+\.?\d*%)$`)

// parseFansProfileString divide uma distribuição "nome percentual" delimitada
// em pares, aceitando vírgula chinesa ou ocidental como separador.
func parseFansProfileString(s string) []fansProfileEntry {
	if s == "" {
		return nil
	}

	var entries []fansProfileEntry

	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '，' || r == ','
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		match := fansProfilePartRegex.FindStringSubmatch(part)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}

		entries = append(entries, fansProfileEntry{Name: name, Value: match[2]})
	}

	return entries
}

// splitFansProfileHeaders varre todos os registros coletados e gera os
// cabeçalhos do modo dividido: um por sub-nome encontrado, ordenados dentro
// de cada categoria.
func splitFansProfileHeaders(targets []*domain.CollectTarget) []string {
	names := make(map[string]map[string]struct{}, len(fansProfileHeaders))
	for _, category := range fansProfileHeaders {
		names[category] = make(map[string]struct{})
	}

	for _, target := range targets {
		if target.Record == nil {
			continue
		}

		for _, category := range fansProfileHeaders {
			value, _ := target.Record[category].(string)
			for _, entry := range parseFansProfileString(value) {
				names[category][entry.Name] = struct{}{}
			}
		}
	}

	var headers []string
	for _, category := range fansProfileHeaders {
		sorted := make([]string, 0, len(names[category]))
		for name := range names[category] {
			sorted = append(sorted, name)
		}
		sort.Strings(sorted)

		for _, name := range sorted {
			headers = append(headers, category+"-"+name)
		}
	}

	return headers
}

// splitFansProfileValues preenche os valores do modo dividido na ordem dos
// cabeçalhos gerados.
func splitFansProfileValues(record domain.FlatRecord, splitHeaders []string) []interface{} {
	parsed := make(map[string]map[string]string, len(fansProfileHeaders))
	for _, category := range fansProfileHeaders {
		parsed[category] = make(map[string]string)

		value, _ := record[category].(string)
		for _, entry := range parseFansProfileString(value) {
			parsed[category][entry.Name] = entry.Value
		}
	}

	values := make([]interface{}, 0, len(splitHeaders))
	for _, header := range splitHeaders {
		matched := false
		for _, category := range fansProfileHeaders {
			if strings.HasPrefix(header, category+"-") {
				values = append(values, parsed[category][header[len(category)+1:]])
				matched = true
				break
			}
		}
		if !matched {
			values = append(values, "")
		}
	}

	return values
}

// baseRow monta os valores das colunas fixas de um alvo. As URLs vêm do
// próprio alvo; o restante do registro coletado.
func baseRow(target *domain.CollectTarget) []interface{} {
	record := target.Record
	if record == nil {
		record = domain.FlatRecord{}
	}

	// O nível de saúde usa teste de presença, não de valor: zero é exibido
	healthLevel := interface{}("")
	if v, ok := record["currentLevel"]; ok && v != nil {
		healthLevel = v
	}

	return []interface{}{
		target.PgyURL,
		target.UserID,
		target.PgyURL,
		target.XhsURL,
		cellOr(record, "name", ""),
		healthLevel,
		cellOr(record, "gender", ""),
		cellOr(record, "redId", ""),
		cellOr(record, "location", ""),
		cellOr(record, "fansCount", 0),
		cellOr(record, "likeCollectCountInfo", 0),
		cellOr(record, "picturePrice", 0),
		cellOr(record, "videoPrice", 0),
		cellOr(record, "lowerPrice", 0),
		cellOr(record, "noteSign", ""),
		cellOr(record, "contentTags", ""),
		cellOr(record, "tradeType", ""),
		cellOr(record, "noteNumber", ""),
		cellOr(record, "noteType", ""),
		cellOr(record, "dateKey", ""),
		cellOr(record, "daily_mAccumImpNum", ""),
		cellOr(record, "daily_mValidRawReadFeedNum", ""),
		cellOr(record, "daily_mEngagementNum", ""),
		cellOr(record, "coop_mAccumImpNum", ""),
		cellOr(record, "coop_mValidRawReadFeedNum", ""),
		cellOr(record, "coop_mEngagementNum", ""),
		cellOr(record, "estimatePictureCpm", ""),
		cellOr(record, "estimateVideoCpm", ""),
		cellOr(record, "picReadCost", ""),
		cellOr(record, "videoReadCostV2", ""),
		cellOr(record, "estimatePictureEngageCost", ""),
		cellOr(record, "estimateVideoEngageCost", ""),
		cellOr(record, "estimatePictureCpuv", ""),
		cellOr(record, "estimateVideoCpuv", ""),
		cellOr(record, "activeDayInLast7", ""),
		cellOr(record, "responseRate", ""),
		cellOr(record, "fans30GrowthBeyondRate", ""),
	}
}
