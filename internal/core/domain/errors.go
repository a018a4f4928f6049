package domain

import "errors"

// Типизированные ошибки движка доступности.
// Контроллер переводит их в транспортные статусы, сам движок никогда не ретраит
var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidRange       = errors.New("search end must be after search start")
	ErrInvalidWorkHours   = errors.New("invalid work hours")
	ErrTemplateNotFound   = errors.New("interview template not found")
)
