package models

import "github.com/pkg/errors"

// ServiceClass is the kind of service a customer registered for.
type ServiceClass string

const (
	Normal   ServiceClass = "N"
	Priority ServiceClass = "P"
)

var ErrInvalidServiceClass = errors.New("tipo de atendimento deve ser N (Normal) ou P (Prioritário)")

// ParseServiceClass validates a raw tipo_atendimento value.
func ParseServiceClass(raw string) (ServiceClass, error) {
	switch ServiceClass(raw) {
	case Normal:
		return Normal, nil
	case Priority:
		return Priority, nil
	}
	return "", errors.Wrapf(ErrInvalidServiceClass, "got %q", raw)
}

// Stats summarises the current state of the line.
type Stats struct {
	Waiting         int    `json:"aguardando"`
	PriorityWaiting int    `json:"prioritarios_aguardando"`
	NormalWaiting   int    `json:"normais_aguardando"`
	Served          int    `json:"atendidos"`
	Revision        uint64 `json:"revisao"`
}
