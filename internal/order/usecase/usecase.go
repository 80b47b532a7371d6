package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/basket"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/order"
	"github.com/fekuna/go-shop/internal/order/dto"
	"github.com/fekuna/go-shop/internal/user"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo      order.Repository
	baskets   basket.Repository
	users     user.Repository
	publisher order.EventPublisher
	logger    *zap.Logger
}

func NewOrderUseCase(repo order.Repository, baskets basket.Repository, users user.Repository, publisher order.EventPublisher, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		baskets:   baskets,
		users:     users,
		publisher: publisher,
		logger:    log,
	}
}

type orderCreatedEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Payload   orderEventPayload `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
}

type orderEventPayload struct {
	UserID string           `json:"user_id"`
	Items  []orderEventItem `json:"items"`
}

type orderEventItem struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (uc *orderUseCase) Place(ctx context.Context, principal auth.Principal) ([]dto.OrderResponse, error) {
	items, err := uc.baskets.FindAllByUser(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.EmptyBasket()
	}

	u, err := uc.users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Should not happen for an authenticated principal.
		return nil, apperrors.NotFound("user %s not found", principal.ID)
	}

	orders, err := uc.repo.CreateFromBasket(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.String("user_id", principal.ID),
		zap.Int("lines", len(orders)),
	)

	// Downstream consumers (fulfilment, notifications) react to the event;
	// a publish failure never fails the placement.
	go uc.publishOrderCreated(context.Background(), principal.ID, orders)

	responses := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = dto.ToOrderResponse(&o)
	}
	return responses, nil
}

func (uc *orderUseCase) publishOrderCreated(ctx context.Context, userID string, orders []model.Order) {
	if uc.publisher == nil {
		return
	}

	event := orderCreatedEvent{
		EventID:   uuid.New().String(),
		EventType: "OrderCreated",
		Payload: orderEventPayload{
			UserID: userID,
			Items:  make([]orderEventItem, len(orders)),
		},
		Timestamp: time.Now(),
	}
	for i, o := range orders {
		event.Payload.Items[i] = orderEventItem{
			OrderID:   o.ID,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
		}
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(userID), value); err != nil {
		uc.logger.Error("failed to publish order event", zap.Error(err))
	}
}

func (uc *orderUseCase) ListAll(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(orders), nil
}

func (uc *orderUseCase) ListForUser(ctx context.Context, userID string, principal auth.Principal) ([]dto.OrderResponse, error) {
	if !principal.IsAdmin() && principal.ID != userID {
		return nil, apperrors.Forbidden("you can only view your own orders")
	}

	orders, err := uc.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(orders), nil
}

func (uc *orderUseCase) Get(ctx context.Context, id string, principal auth.Principal) (*dto.OrderResponse, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperrors.NotFound("order %s not found", id)
	}
	if !principal.IsAdmin() && o.UserID != principal.ID {
		return nil, apperrors.Forbidden("you can only view your own orders")
	}

	response := dto.ToOrderResponse(o)
	return &response, nil
}

func toResponses(orders []model.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = dto.ToOrderResponse(&o)
	}
	return responses
}
