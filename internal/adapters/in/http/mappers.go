package http

import (
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrder(v queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = servers.OrderLine{
			Id:          l.ID.Google(),
			Note:        l.Note,
			Position:    l.Position,
			ProductId:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal.InexactFloat64(),
			UnitPrice:   l.UnitPrice.InexactFloat64(),
		}
	}

	res := servers.Order{
		CreatedAt: v.CreatedAt,
		Id:        v.ID.Google(),
		Lines:     lines,
		Status:    servers.OrderStatus(v.Status.String()),
		Total:     v.Total.InexactFloat64(),
		UpdatedAt: v.UpdatedAt,
		UserId:    v.UserID,
	}
	if v.UserName != "" {
		name := v.UserName
		res.UserName = &name
	}
	return res
}

// createdOrderView projects a just created order without product names.
func createdOrderView(o *order.Order, userName string) queries.OrderView {
	lines := make([]queries.OrderLineView, len(o.Lines()))
	for i, l := range o.Lines() {
		lines[i] = queries.OrderLineView{
			ID:        l.ID(),
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
			Subtotal:  l.Subtotal().Decimal(),
			Note:      l.Note(),
			Position:  l.Position(),
		}
	}
	return queries.OrderView{
		ID:        o.ID(),
		UserID:    o.UserID(),
		UserName:  userName,
		Status:    o.Status(),
		Total:     o.Total().Decimal(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Lines:     lines,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	res := make([]servers.Order, len(views))
	for i, v := range views {
		res[i] = toOrder(v)
	}
	return res
}

func toProductView(v queries.ProductView) servers.Product {
	return servers.Product{
		Available:   v.Available,
		Category:    servers.ProductCategory(v.Category.String()),
		CreatedAt:   v.CreatedAt,
		Description: v.Description,
		Id:          v.ID,
		Image:       v.Image,
		Name:        v.Name,
		Price:       v.Price.InexactFloat64(),
	}
}

func toProducts(views []queries.ProductView) []servers.Product {
	res := make([]servers.Product, len(views))
	for i, v := range views {
		res[i] = toProductView(v)
	}
	return res
}

func toProduct(p *product.Product) servers.Product {
	return servers.Product{
		Available:   p.IsAvailable(),
		Category:    servers.ProductCategory(p.Category().String()),
		CreatedAt:   p.CreatedAt(),
		Description: p.Description(),
		Id:          p.ID(),
		Image:       p.Image(),
		Name:        p.Name(),
		Price:       p.Price().Float64(),
	}
}

func toUser(u *user.User) servers.User {
	return servers.User{
		Active:       u.IsActive(),
		Email:        u.Email(),
		Id:           u.ID(),
		Name:         u.Name(),
		RegisteredAt: u.RegisteredAt(),
		Role:         servers.UserRole(u.Role().String()),
	}
}

func toUserView(v queries.UserView) servers.User {
	return servers.User{
		Active:       v.Active,
		Email:        v.Email,
		Id:           v.ID,
		Name:         v.Name,
		RegisteredAt: v.RegisteredAt,
		Role:         servers.UserRole(v.Role.String()),
	}
}

func toUserStats(s queries.UserStats) servers.UserStats {
	res := servers.UserStats{
		LastOrderAt: s.LastOrderAt,
		OrderCount:  s.OrderCount,
		TotalSpent:  s.TotalSpent.InexactFloat64(),
	}
	if s.FavouriteProduct != nil {
		res.FavouriteProduct = &servers.FavouriteProduct{
			Name:      s.FavouriteProduct.Name,
			ProductId: s.FavouriteProduct.ProductID,
			Quantity:  s.FavouriteProduct.Quantity,
		}
	}
	return res
}

func toAdminStats(s queries.AdminStats) servers.AdminStats {
	return servers.AdminStats{
		ActiveUsers:     s.ActiveUsers,
		Day:             openapi_types.Date{Time: s.Day},
		DeliveredOrders: s.DeliveredOrders,
		PendingOrders:   s.PendingOrders,
		ReadyOrders:     s.ReadyOrders,
		SalesToday:      s.SalesToday.InexactFloat64(),
		TotalOrders:     s.TotalOrders,
	}
}
