package types

import "github.com/google/uuid"

type RequestID uuid.UUID

func NewRequestID() RequestID {
	return RequestID(uuid.New())
}

func (instance RequestID) String() string {
	return uuid.UUID(instance).String()
}

func (instance RequestID) IsNil() bool {
	return uuid.UUID(instance) == uuid.Nil
}
