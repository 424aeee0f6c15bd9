package models

import "time"

// ----- GENERAL MODEL -----

// GeneralModelStatus describe el artefacto del modelo general en disco.
type GeneralModelStatus struct {
	Path       string    `json:"path"`
	Loaded     bool      `json:"loaded"`
	NumTrees   int       `json:"numTrees,omitempty"`
	TrainedAt  time.Time `json:"trainedAt,omitempty"`
	SampleSize int       `json:"sampleSize,omitempty"`
	Features   []string  `json:"features"`
}

// RetrainGeneralRequest body de /admin/general-model/retrain.
type RetrainGeneralRequest struct {
	MinRatingsPerUser int `json:"minRatingsPerUser"`
	MaxRows           int `json:"maxRows"`
}

// RetrainGeneralResult resultado del reentrenamiento batch.
type RetrainGeneralResult struct {
	Rows            int     `json:"rows"`
	RMSETest        float64 `json:"rmse_test"`
	RoundedRMSETest float64 `json:"rounded_rmse_test"`
	Path            string  `json:"path"`
	Seconds         float64 `json:"seconds"`
}

// ----- REC NODES -----

// NodePingResult estado de un nodo de recomendación.
type NodePingResult struct {
	Addr    string `json:"addr"`
	Alive   bool   `json:"alive"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}
