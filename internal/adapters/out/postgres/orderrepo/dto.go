// Package orderrepo persists order aggregates and their lines with GORM.
package orderrepo

import (
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    int64           `gorm:"index"`
	Status    string          `gorm:"type:varchar(16)"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime:false"`
	Lines     []LineDTO       `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is the row of the order_lines table.
type LineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID int64           `gorm:"index"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Note      string
	Position  int
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	dtoLines := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		dtoLines = append(dtoLines, LineDTO{
			ID:        line.ID().Google(),
			OrderID:   aggregate.ID().Google(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
			Note:      line.Note(),
			Position:  line.Position(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().Google(),
		UserID:    aggregate.UserID(),
		Status:    aggregate.Status().String(),
		Total:     aggregate.Total().Decimal(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Lines:     dtoLines,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Lines must already be
// sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.UserID, status, total, lines, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, dto.ProductID, dto.Quantity, price, dto.Note, dto.Position)
}
