package pgy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
)

func TestExtractBloggerInfo(t *testing.T) {
	payload := map[string]interface{}{
		"name":      "测试博主",
		"gender":    "女",
		"redId":     "12345678",
		"location":  "上海",
		"fansCount": json.Number("150000"),
		"likeCollectCountInfo": json.Number("890000"),
		"picturePrice": json.Number("5000"),
		"videoPrice":   json.Number("8000"),
		"currentLevel": json.Number("3"),
		"noteSign": map[string]interface{}{
			"name": "某机构",
		},
		"contentTags": []interface{}{
			map[string]interface{}{
				"taxonomy2Tags": []interface{}{"美妆", "护肤"},
			},
			map[string]interface{}{
				"taxonomy2Tags": []interface{}{"穿搭"},
			},
		},
		"tradeType": "美妆个护",
	}

	record := ExtractBloggerInfo(payload)

	assert.Equal(t, "测试博主", record["name"])
	assert.Equal(t, "女", record["gender"])
	assert.Equal(t, json.Number("150000"), record["fansCount"])
	assert.Equal(t, "某机构", record["noteSign"])
	assert.Equal(t, "美妆, 护肤, 穿搭", record["contentTags"])
	assert.Equal(t, json.Number("3"), record["currentLevel"])
}

func TestExtractBloggerInfo_CamposAusentes(t *testing.T) {
	record := ExtractBloggerInfo(map[string]interface{}{})

	// Campos numéricos ausentes viram zero; textuais viram string vazia
	assert.Equal(t, "", record["name"])
	assert.Equal(t, 0, record["fansCount"])
	assert.Equal(t, 0, record["picturePrice"])
	assert.Equal(t, "", record["noteSign"])
	assert.Equal(t, "", record["contentTags"])
	assert.Equal(t, "", record["currentLevel"])
}

func TestExtractDataSummary_NotasDiarias(t *testing.T) {
	payload := map[string]interface{}{
		"noteNumber": json.Number("42"),
		"noteType": []interface{}{
			map[string]interface{}{"contentTag": "美妆", "percent": "60%"},
			map[string]interface{}{"contentTag": "穿搭", "percent": "40%"},
		},
		"dateKey":              "2024-01",
		"mAccumImpNum":         json.Number("100000"),
		"mValidRawReadFeedNum": json.Number("50000"),
		"mEngagementNum":       json.Number("3000"),
	}

	record := ExtractDataSummary(payload, 0)

	assert.Equal(t, json.Number("42"), record["noteNumber"])
	assert.Equal(t, "美妆(60%), 穿搭(40%)", record["noteType"])
	assert.Equal(t, json.Number("100000"), record["daily_mAccumImpNum"])
	assert.NotContains(t, record, "coop_mAccumImpNum")
}

func TestExtractDataSummary_NotasDeCooperacao(t *testing.T) {
	payload := map[string]interface{}{
		"mAccumImpNum":       json.Number("80000"),
		"estimatePictureCpm": json.Number("12.5"),
		"responseRate":       "95%",
		"activeDayInLast7":   json.Number("6"),
	}

	record := ExtractDataSummary(payload, 1)

	assert.Equal(t, json.Number("80000"), record["coop_mAccumImpNum"])
	assert.Equal(t, json.Number("12.5"), record["estimatePictureCpm"])
	assert.Equal(t, "95%", record["responseRate"])
	assert.Equal(t, json.Number("6"), record["activeDayInLast7"])
	assert.NotContains(t, record, "noteType")
}

func TestPerformancePrefix(t *testing.T) {
	tests := []struct {
		name     string
		params   pgydomain.PerformanceParams
		expected string
	}{
		{
			name:     "Notas diárias, imagem e vídeo, 30 dias",
			params:   pgydomain.PerformanceParams{Business: 0, NoteType: 3, DateType: 1},
			expected: "数据表现-日常笔记-图文+视频-近30天-全流量-",
		},
		{
			name:     "Notas de cooperação, somente imagem, 90 dias",
			params:   pgydomain.PerformanceParams{Business: 1, NoteType: 1, DateType: 2},
			expected: "数据表现-合作笔记-图文-近90天-全流量-",
		},
		{
			name:     "Notas diárias, somente vídeo, 30 dias",
			params:   pgydomain.PerformanceParams{Business: 0, NoteType: 2, DateType: 1},
			expected: "数据表现-日常笔记-视频-近30天-全流量-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PerformancePrefix(tt.params))
		})
	}
}

func TestExtractNotesRate(t *testing.T) {
	params := pgydomain.PerformanceParams{Business: 0, NoteType: 3, DateType: 1}
	payload := map[string]interface{}{
		"noteNumber": json.Number("30"),
		"likeMedian": json.Number("1200"),
		"noteType": []interface{}{
			map[string]interface{}{"contentTag": "美妆", "percent": "70%"},
		},
		"pagePercentVo": map[string]interface{}{
			"readHomefeedPercent": json.Number("0.652"),
			"readSearchPercent":   json.Number("0.2"),
			"impHomefeedPercent":  json.Number("0.701"),
		},
	}

	record := ExtractNotesRate(payload, params)

	prefix := "数据表现-日常笔记-图文+视频-近30天-全流量-"
	assert.Equal(t, json.Number("30"), record[prefix+"笔记数"])
	assert.Equal(t, "美妆70%", record[prefix+"内容类目及占比"])
	assert.Equal(t, json.Number("1200"), record[prefix+"中位点赞量"])

	// Frações de tráfego viram percentuais com uma casa; ausentes ficam vazios
	assert.Equal(t, "65.2%", record[prefix+"阅读量来源-发现页"])
	assert.Equal(t, "20.0%", record[prefix+"阅读量来源-搜索页"])
	assert.Equal(t, "70.1%", record[prefix+"曝光量来源-发现页"])
	assert.Equal(t, "", record[prefix+"阅读量来源-关注页"])
	assert.Equal(t, "", record[prefix+"曝光量来源-其他"])
}

func TestExtractCoreData(t *testing.T) {
	payload := map[string]interface{}{
		"sumData": map[string]interface{}{
			"imp":          json.Number("50000"),
			"read":         json.Number("20000"),
			"engage":       json.Number("1500"),
			"cpm":          json.Number("10.456"),
			"cpv":          json.Number("0.5"),
			"cpe":          json.Number("6"),
			"thirdUserNum": json.Number("80"),
		},
	}

	t.Run("Notas diárias não trazem transbordo para loja", func(t *testing.T) {
		params := pgydomain.PerformanceParams{Business: 0, NoteType: 3, DateType: 1}
		record := ExtractCoreData(payload, params)

		prefix := PerformancePrefix(params)
		assert.Equal(t, json.Number("50000"), record[prefix+"曝光中位数"])
		assert.Equal(t, "10.46", record[prefix+"预估CPM"])
		assert.Equal(t, "0.50", record[prefix+"预估阅读单价"])
		assert.Equal(t, "6.00", record[prefix+"预估互动单价"])
		assert.NotContains(t, record, prefix+"外溢进店中位数")
	})

	t.Run("Notas de cooperação trazem transbordo para loja", func(t *testing.T) {
		params := pgydomain.PerformanceParams{Business: 1, NoteType: 3, DateType: 1}
		record := ExtractCoreData(payload, params)

		prefix := PerformancePrefix(params)
		assert.Equal(t, json.Number("80"), record[prefix+"外溢进店中位数"])
	})
}

func TestExtractFansSummary(t *testing.T) {
	payload := map[string]interface{}{
		"fansIncreaseNum":    json.Number("3200"),
		"fansGrowthRate":     json.Number("2.1"),
		"activeFansRate":     json.Number("65.4"),
		"readFansRate":       json.Number("0"),
		"engageFansRate":     "",
		"payFansUserRate30d": json.Number("1.8"),
	}

	record := ExtractFansSummary(payload)

	assert.Equal(t, json.Number("3200"), record["粉丝指标-粉丝增量"])
	assert.Equal(t, "2.1%", record["粉丝指标-粉丝量变化幅度"])
	assert.Equal(t, "65.4%", record["粉丝指标-活跃粉丝占比"])

	// Zeros e vazios não ganham o sufixo de percentual
	assert.Equal(t, "", record["粉丝指标-阅读粉丝占比"])
	assert.Equal(t, "", record["粉丝指标-互动粉丝占比"])
}

func TestExtractFansProfile(t *testing.T) {
	payload := map[string]interface{}{
		"gender": map[string]interface{}{
			"male":   json.Number("0.3012"),
			"female": json.Number("0.6988"),
		},
		"ages": []interface{}{
			map[string]interface{}{"group": "18-24", "percent": json.Number("0.45")},
			map[string]interface{}{"group": "25-34", "percent": json.Number("0.35")},
		},
		"provinces": []interface{}{
			map[string]interface{}{"name": "广东", "percent": json.Number("0.15")},
		},
		"cities": []interface{}{
			map[string]interface{}{"name": "上海", "percent": json.Number("0.08")},
		},
		"devices": []interface{}{
			map[string]interface{}{"desc": "iPhone", "percent": json.Number("0.55")},
		},
		"interests": []interface{}{
			map[string]interface{}{"name": "美妆", "percent": json.Number("0.4")},
		},
	}

	record := ExtractFansProfile(payload)

	assert.Equal(t, "男30.12%，女69.88%", record["粉丝画像-性别分布"])
	assert.Equal(t, "18-24 45.0%，25-34 35.0%", record["粉丝画像-年龄分布"])
	assert.Equal(t, "广东 15.0%", record["粉丝画像-地域分布-按省份"])
	assert.Equal(t, "上海 8.0%", record["粉丝画像-地域分布-按城市"])
	assert.Equal(t, "iPhone 55.0%", record["粉丝画像-用户设备分布"])
	assert.Equal(t, "美妆 40.0%", record["粉丝画像-用户兴趣"])
}

func TestExtractFansProfile_LimiteDeItens(t *testing.T) {
	// As cidades são limitadas às nove mais relevantes
	var cities []interface{}
	for i := 0; i < 15; i++ {
		cities = append(cities, map[string]interface{}{
			"name":    "城市",
			"percent": json.Number("0.01"),
		})
	}

	record := ExtractFansProfile(map[string]interface{}{"cities": cities})

	parts := 1
	for _, c := range record["粉丝画像-地域分布-按城市"].(string) {
		if c == '，' {
			parts++
		}
	}
	assert.Equal(t, 9, parts)
}
