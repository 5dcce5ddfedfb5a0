package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Serialize renders the order as one pipe-delimited record:
//
//	orderId|customerId|customerName|status|orderDate|shippingAddress|totalAmount|discountAmount|finalAmount|notes|items
//
// where items is a semicolon-separated list of
// productId,productName,quantity,unitPrice tuples.
func (o *Order) Serialize() string {
	items := make([]string, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, strings.Join([]string{
			strconv.Itoa(o.Items[i].ProductID),
			o.Items[i].ProductName,
			strconv.Itoa(o.Items[i].Quantity),
			strconv.FormatFloat(o.Items[i].UnitPrice, 'f', -1, 64),
		}, ","))
	}

	return strings.Join([]string{
		strconv.Itoa(o.ID),
		strconv.Itoa(o.CustomerID),
		o.CustomerName,
		string(o.Status),
		o.OrderDate.Format(DateTimeLayout),
		o.ShippingAddress,
		strconv.FormatFloat(o.TotalAmount, 'f', -1, 64),
		strconv.FormatFloat(o.DiscountAmount, 'f', -1, 64),
		strconv.FormatFloat(o.FinalAmount, 'f', -1, 64),
		o.Notes,
		strings.Join(items, ";"),
	}, "|")
}

// ParseOrder decodes one pipe-delimited record. A record with fewer than
// eleven top-level fields yields a zero order; malformed scalar fields
// decode to their zero values rather than failing the load. Item tuples
// with fewer than four fields are skipped.
func ParseOrder(line string) *Order {
	parts := strings.Split(line, "|")
	order := &Order{Status: StatusPending}
	if len(parts) < 11 {
		return order
	}

	order.ID = cast.ToInt(parts[0])
	order.CustomerID = cast.ToInt(parts[1])
	order.CustomerName = parts[2]
	order.Status = ParseStatus(parts[3])
	if t, err := time.ParseInLocation(DateTimeLayout, parts[4], time.Local); err == nil {
		order.OrderDate = t
	}
	order.ShippingAddress = parts[5]
	order.TotalAmount = cast.ToFloat64(parts[6])
	order.DiscountAmount = cast.ToFloat64(parts[7])
	order.FinalAmount = cast.ToFloat64(parts[8])
	order.Notes = parts[9]

	if parts[10] != "" {
		for _, tuple := range strings.Split(parts[10], ";") {
			fields := strings.Split(tuple, ",")
			if len(fields) < 4 {
				continue
			}
			order.Items = append(order.Items, NewOrderItem(
				cast.ToInt(fields[0]),
				fields[1],
				cast.ToInt(fields[2]),
				cast.ToFloat64(fields[3]),
			))
		}
	}
	return order
}
