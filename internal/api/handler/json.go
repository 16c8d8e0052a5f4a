package handler

import jsoniter "github.com/json-iterator/go"

// Serialização das respostas da API. Os registros achatados são mapas
// grandes; jsoniter mantém a compatibilidade com encoding/json com custo
// menor por requisição.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
