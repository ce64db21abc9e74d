package events

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/config"
	"NaviCode/constants"
	"NaviCode/dto"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

func NewEventBus(config config.EventBusConfig, logger *zap.Logger) (*EventBus, error) {
	pool, err := ants.NewPool(config.PoolSize, ants.WithPreAlloc(true))
	if err != nil {
		return nil, navicodeerror.Wrap(err, navicodeerror.FailCreateEventBus, "Fail Create Ant Pool")
	}
	bus := &EventBus{
		ToolCallEvent:   NewTypedBus[dto.ToolCallData](),
		ToolResultEvent: NewTypedBus[dto.ToolResultData](),

		UpdateViewEvent: NewTypedBus[dto.UpdateViewData](),

		RagnarokEvent: NewTypedBus[dto.RagnarokData](),

		logger: logger,
		pool:   pool,
	}
	return bus, nil
}

type EventBus struct {
	ToolCallEvent   *TypedBus[dto.ToolCallData]
	ToolResultEvent *TypedBus[dto.ToolResultData]

	UpdateViewEvent *TypedBus[dto.UpdateViewData]

	RagnarokEvent *TypedBus[dto.RagnarokData]

	logger *zap.Logger
	pool   *ants.Pool
}

func (instance *EventBus) Ragnarok() {
	Publish(instance, instance.RagnarokEvent, Event[dto.RagnarokData]{
		Data:      dto.RagnarokData{},
		TimeStamp: time.Now(),
	})
}

func (instance *EventBus) Close() {
	instance.pool.Release()
}

func Subscribe[T any](bus *EventBus, typedBus *TypedBus[T], source constants.Source, handler func(Event[T])) {
	typedBus.handlerMutex.Lock()
	defer typedBus.handlerMutex.Unlock()
	typedBus.handlers[source] = handler
}

func UnSubscribe[T any](bus *EventBus, typedBus *TypedBus[T], source constants.Source) {
	typedBus.handlerMutex.Lock()
	defer typedBus.handlerMutex.Unlock()
	delete(typedBus.handlers, source)
}

func Publish[T any](bus *EventBus, typedBus *TypedBus[T], event Event[T]) {
	typedBus.handlerMutex.RLock()
	copyed := make([]func(Event[T]), 0, len(typedBus.handlers))
	for _, handler := range typedBus.handlers {
		copyed = append(copyed, handler)
	}
	typedBus.handlerMutex.RUnlock()
	for _, handler := range copyed {
		copyedHandler := handler
		bus.pool.Submit(func() {
			defer func() {
				if recover := recover(); recover != nil {
					bus.logger.Error("", zap.Any("recover", recover),
						zap.Error(navicodeerror.Wrap(
							nil,
							navicodeerror.FailHandleEvent,
							"Fail HandleEvent",
						)))
					bus.Ragnarok()
				}
			}()
			copyedHandler(event)
		})
	}
}
