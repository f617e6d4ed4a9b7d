package health

type probeOutput struct {
	Body storageStatus
}

// storageStatus - результат пробного чтения из хранилища
type storageStatus struct {
	Status    string `json:"status" example:"OK" doc:"OK, если хранилище ответило"`
	Storage   string `json:"storage" example:"sqlite" doc:"Драйвер хранилища"`
	LatencyMs int64  `json:"latencyMs" example:"1" doc:"Время пробного чтения, мс"`
}
