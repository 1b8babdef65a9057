package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const timeLayout = "2006-01-02 15:04"

// команды vendorctl orders в порядке показа
var orderActions = []struct {
	command string
	target  model.OrderStatus
}{
	{"accept", model.OrderStatusConfirmed},
	{"preparing", model.OrderStatusPreparing},
	{"ready", model.OrderStatusReady},
	{"decline", model.OrderStatusCancelled},
}

func renderVendor(out io.Writer, vendor model.VendorProfile) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "vendor:\t%s\n", vendor.Name)
	fmt.Fprintf(tw, "status:\t%s\n", vendor.Status)
	fmt.Fprintf(tw, "phone:\t%s\n", vendor.Phone)
	fmt.Fprintf(tw, "address:\t%s\n", vendor.Address)
	fmt.Fprintf(tw, "rating:\t%s\n", vendor.Rating.StringFixed(1))
	fmt.Fprintf(tw, "delivery time:\t%s\n", vendor.DeliveryTime)
}

func renderStats(out io.Writer, stats model.VendorStats) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "total orders:\t%d\n", stats.TotalOrders)
	fmt.Fprintf(tw, "pending orders:\t%d\n", stats.PendingOrders)
	fmt.Fprintf(tw, "today revenue:\t%s\n", stats.TodayRevenue.StringFixed(2))
	fmt.Fprintf(tw, "total revenue:\t%s\n", stats.TotalRevenue.StringFixed(2))
}

func renderOrders(out io.Writer, orders []model.OrderWithContext) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "no orders")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tSTATUS\tCUSTOMER\tITEMS\tTOTAL\tCREATED\tNEXT")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.Status, customerName(o.Customer), itemsColumn(o.Items),
			o.TotalAmount.StringFixed(2), o.CreatedAt.Local().Format(timeLayout), nextActions(o.Status))
	}
}

func nextActions(status model.OrderStatus) string {
	var actions []string
	for _, a := range orderActions {
		if status.CanTransitionTo(a.target) {
			actions = append(actions, a.command)
		}
	}
	if len(actions) == 0 {
		return "-"
	}
	return strings.Join(actions, ",")
}

func customerName(c *model.CustomerProfile) string {
	switch {
	case c == nil:
		return "-"
	case c.FullName != "":
		return c.FullName
	case c.Username != "":
		return c.Username
	default:
		return "-"
	}
}

func itemsColumn(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		title := item.Title
		if title == "" {
			title = "?"
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, title))
	}
	return strings.Join(parts, ", ")
}
