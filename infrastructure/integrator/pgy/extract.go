package pgy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

// As funções deste arquivo são extratores puros: payload bruto -> registro
// plano. A semântica de "valor ausente" segue a plataforma: valores nulos,
// strings vazias e zeros numéricos viram o valor padrão informado; strings
// não vazias (inclusive "0") são preservadas.

// truthy reproduz o teste de valor significativo aplicado aos payloads.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	case bool:
		return value
	default:
		return true
	}
}

// valueOr devolve o valor da chave quando significativo, senão o padrão.
func valueOr(payload map[string]interface{}, key string, fallback interface{}) interface{} {
	if v, ok := payload[key]; ok && truthy(v) {
		return v
	}
	return fallback
}

func stringOr(payload map[string]interface{}, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// asFloat converte números e strings numéricas do payload.
func asFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case json.Number:
		f, err := value.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(value, 64)
		return f, err == nil
	case float64:
		return value, true
	case int:
		return float64(value), true
	}
	return 0, false
}

// percentString formata uma fração [0,1] como percentual com a precisão dada.
func percentString(v interface{}, decimals int) string {
	f, ok := asFloat(v)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f*100, 'f', decimals, 64) + "%"
}

// fixedString formata um número com casas decimais fixas, ou vazio se ausente.
func fixedString(v interface{}, decimals int) string {
	if v == nil {
		return ""
	}
	f, ok := asFloat(v)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

func subMap(payload map[string]interface{}, key string) map[string]interface{} {
	if m, ok := payload[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func subList(payload map[string]interface{}, key string) []interface{} {
	if l, ok := payload[key].([]interface{}); ok {
		return l
	}
	return nil
}

// ExtractBloggerInfo achata os dados cadastrais do blogueiro.
func ExtractBloggerInfo(payload map[string]interface{}) domain.FlatRecord {
	// Concatenar todas as sub-tags de conteúdo em uma única string
	var contentTags []string
	for _, tag := range subList(payload, "contentTags") {
		tagMap, ok := tag.(map[string]interface{})
		if !ok {
			continue
		}
		for _, sub := range subList(tagMap, "taxonomy2Tags") {
			if name, ok := sub.(string); ok {
				contentTags = append(contentTags, name)
			}
		}
	}

	// A agência de assinatura pode estar ausente
	noteSignName := ""
	if noteSign, ok := payload["noteSign"].(map[string]interface{}); ok {
		noteSignName = stringOr(noteSign, "name", "")
	}

	return domain.FlatRecord{
		"name":                 stringOr(payload, "name", ""),
		"gender":               stringOr(payload, "gender", ""),
		"redId":                stringOr(payload, "redId", ""),
		"location":             stringOr(payload, "location", ""),
		"fansCount":            valueOr(payload, "fansCount", 0),
		"likeCollectCountInfo": valueOr(payload, "likeCollectCountInfo", 0),
		"picturePrice":         valueOr(payload, "picturePrice", 0),
		"videoPrice":           valueOr(payload, "videoPrice", 0),
		"lowerPrice":           valueOr(payload, "lowerPrice", 0),
		"currentLevel":         valueOr(payload, "currentLevel", ""),
		"noteSign":             noteSignName,
		"contentTags":          strings.Join(contentTags, ", "),
		"tradeType":            stringOr(payload, "tradeType", ""),
	}
}

// ExtractDataSummary achata o resumo de dados. O formato depende do tipo de
// nota consultado.
func ExtractDataSummary(payload map[string]interface{}, business int) domain.FlatRecord {
	if business == 0 {
		// Notas diárias: inclui a distribuição de categorias de conteúdo
		var categories []string
		for _, item := range subList(payload, "noteType") {
			itemMap, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			categories = append(categories, fmt.Sprintf(
				"%s(%v)",
				stringOr(itemMap, "contentTag", ""),
				valueOr(itemMap, "percent", ""),
			))
		}

		return domain.FlatRecord{
			"noteNumber":                 valueOr(payload, "noteNumber", 0),
			"noteType":                   strings.Join(categories, ", "),
			"dateKey":                    stringOr(payload, "dateKey", ""),
			"daily_mAccumImpNum":         valueOr(payload, "mAccumImpNum", 0),
			"daily_mValidRawReadFeedNum": valueOr(payload, "mValidRawReadFeedNum", 0),
			"daily_mEngagementNum":       valueOr(payload, "mEngagementNum", 0),
		}
	}

	// Notas de cooperação: inclui os custos estimados
	return domain.FlatRecord{
		"coop_mAccumImpNum":         valueOr(payload, "mAccumImpNum", 0),
		"coop_mValidRawReadFeedNum": valueOr(payload, "mValidRawReadFeedNum", 0),
		"coop_mEngagementNum":       valueOr(payload, "mEngagementNum", 0),
		"estimatePictureCpm":        valueOr(payload, "estimatePictureCpm", 0),
		"estimateVideoCpm":          valueOr(payload, "estimateVideoCpm", 0),
		"picReadCost":               valueOr(payload, "picReadCost", 0),
		"videoReadCostV2":           valueOr(payload, "videoReadCostV2", 0),
		"estimatePictureEngageCost": valueOr(payload, "estimatePictureEngageCost", 0),
		"estimateVideoEngageCost":   valueOr(payload, "estimateVideoEngageCost", 0),
		"estimatePictureCpuv":       valueOr(payload, "estimatePictureCpuv", 0),
		"estimateVideoCpuv":         valueOr(payload, "estimateVideoCpuv", 0),
		"activeDayInLast7":          valueOr(payload, "activeDayInLast7", 0),
		"responseRate":              valueOr(payload, "responseRate", ""),
		"fans30GrowthBeyondRate":    valueOr(payload, "fans30GrowthBeyondRate", ""),
	}
}

// PerformancePrefix deriva o prefixo dos campos de desempenho a partir da
// combinação de parâmetros.
func PerformancePrefix(params pgydomain.PerformanceParams) string {
	business := "日常笔记"
	if params.Business == 1 {
		business = "合作笔记"
	}

	noteType := "视频"
	switch params.NoteType {
	case 3:
		noteType = "图文+视频"
	case 1:
		noteType = "图文"
	}

	dateType := "近30天"
	if params.DateType == 2 {
		dateType = "近90天"
	}

	return fmt.Sprintf("数据表现-%s-%s-%s-全流量-", business, noteType, dateType)
}

// Fontes de tráfego do detalhamento de leituras e exposições.
var trafficSources = []struct {
	label string
	field string
}{
	{"发现页", "HomefeedPercent"},
	{"搜索页", "SearchPercent"},
	{"关注页", "FollowPercent"},
	{"博主个人页", "DetailPercent"},
	{"附近页", "NearbyPercent"},
	{"其他", "OtherPercent"},
}

// ExtractNotesRate achata as métricas de taxa de uma combinação de desempenho.
func ExtractNotesRate(payload map[string]interface{}, params pgydomain.PerformanceParams) domain.FlatRecord {
	prefix := PerformancePrefix(params)

	var categories []string
	for _, item := range subList(payload, "noteType") {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		categories = append(categories, fmt.Sprintf(
			"%s%v",
			stringOr(itemMap, "contentTag", ""),
			valueOr(itemMap, "percent", ""),
		))
	}

	record := domain.FlatRecord{
		prefix + "笔记数":      valueOr(payload, "noteNumber", ""),
		prefix + "内容类目及占比":  strings.Join(categories, ", "),
		prefix + "中位点赞量":    valueOr(payload, "likeMedian", ""),
		prefix + "中位收藏量":    valueOr(payload, "collectMedian", ""),
		prefix + "中位评论量":    valueOr(payload, "commentMedian", ""),
		prefix + "中位分享量":    valueOr(payload, "shareMedian", ""),
		prefix + "中位关注量":    valueOr(payload, "mfollowCnt", ""),
		prefix + "互动率":      valueOr(payload, "interactionRate", ""),
		prefix + "图文3秒阅读率":  valueOr(payload, "picture3sViewRate", ""),
		prefix + "千赞笔记比例":   valueOr(payload, "thousandLikePercent", ""),
		prefix + "百赞笔记比例":   valueOr(payload, "hundredLikePercent", ""),
	}

	// Detalhamento por fonte de tráfego: frações em [0,1] renderizadas como
	// percentual com uma casa decimal; ausentes viram string vazia
	pagePercent := subMap(payload, "pagePercentVo")
	for _, source := range trafficSources {
		readValue := ""
		if v, ok := pagePercent["read"+source.field]; ok && v != nil {
			readValue = percentString(v, 1)
		}
		record[prefix+"阅读量来源-"+source.label] = readValue

		impValue := ""
		if v, ok := pagePercent["imp"+source.field]; ok && v != nil {
			impValue = percentString(v, 1)
		}
		record[prefix+"曝光量来源-"+source.label] = impValue
	}

	return record
}

// ExtractCoreData achata o resumo de medianas e custos de uma combinação de
// desempenho. O campo de transbordo para loja só existe em notas de
// cooperação.
func ExtractCoreData(payload map[string]interface{}, params pgydomain.PerformanceParams) domain.FlatRecord {
	prefix := PerformancePrefix(params)
	sumData := subMap(payload, "sumData")

	record := domain.FlatRecord{
		prefix + "曝光中位数": valueOr(sumData, "imp", ""),
		prefix + "阅读中位数": valueOr(sumData, "read", ""),
		prefix + "互动中位数": valueOr(sumData, "engage", ""),
		prefix + "预估CPM":  fixedString(sumData["cpm"], 2),
		prefix + "预估阅读单价": fixedString(sumData["cpv"], 2),
		prefix + "预估互动单价": fixedString(sumData["cpe"], 2),
	}

	if params.Business == 1 {
		record[prefix+"外溢进店中位数"] = valueOr(sumData, "thirdUserNum", "")
	}

	return record
}

// ExtractFansSummary achata os indicadores de fãs. Os percentuais só ganham o
// sufixo quando o valor é significativo; zeros viram string vazia.
func ExtractFansSummary(payload map[string]interface{}) domain.FlatRecord {
	percentOrEmpty := func(key string) string {
		if v, ok := payload[key]; ok && truthy(v) {
			return fmt.Sprintf("%v%%", v)
		}
		return ""
	}

	return domain.FlatRecord{
		"粉丝指标-粉丝增量":    valueOr(payload, "fansIncreaseNum", ""),
		"粉丝指标-粉丝量变化幅度": percentOrEmpty("fansGrowthRate"),
		"粉丝指标-活跃粉丝占比":  percentOrEmpty("activeFansRate"),
		"粉丝指标-阅读粉丝占比":  percentOrEmpty("readFansRate"),
		"粉丝指标-互动粉丝占比":  percentOrEmpty("engageFansRate"),
		"粉丝指标-下单粉丝占比":  percentOrEmpty("payFansUserRate30d"),
	}
}

// distributionString junta os primeiros itens de uma lista de distribuição em
// uma única string "nome percentual" delimitada.
func distributionString(items []interface{}, nameKey string, limit int) string {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		percent := 0.0
		if f, ok := asFloat(itemMap["percent"]); ok {
			percent = f
		}

		parts = append(parts, fmt.Sprintf(
			"%s %s%%",
			stringOr(itemMap, nameKey, ""),
			strconv.FormatFloat(percent*100, 'f', 1, 64),
		))
	}

	return strings.Join(parts, "，")
}

// ExtractFansProfile achata o retrato demográfico dos fãs, limitando cada
// distribuição aos itens mais relevantes.
func ExtractFansProfile(payload map[string]interface{}) domain.FlatRecord {
	gender := subMap(payload, "gender")
	male := 0.0
	if f, ok := asFloat(gender["male"]); ok {
		male = f
	}
	female := 0.0
	if f, ok := asFloat(gender["female"]); ok {
		female = f
	}

	genderStr := fmt.Sprintf(
		"男%s%%，女%s%%",
		strconv.FormatFloat(male*100, 'f', 2, 64),
		strconv.FormatFloat(female*100, 'f', 2, 64),
	)

	return domain.FlatRecord{
		"粉丝画像-性别分布":    genderStr,
		"粉丝画像-年龄分布":    distributionString(subList(payload, "ages"), "group", 0),
		"粉丝画像-地域分布-按省份": distributionString(subList(payload, "provinces"), "name", 20),
		"粉丝画像-地域分布-按城市": distributionString(subList(payload, "cities"), "name", 9),
		"粉丝画像-用户设备分布":  distributionString(subList(payload, "devices"), "desc", 10),
		"粉丝画像-用户兴趣":    distributionString(subList(payload, "interests"), "name", 20),
	}
}
