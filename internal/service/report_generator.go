package service

// ReportKind names one of the reports built by ReportGenerator.
type ReportKind string

const (
	ReportSales     ReportKind = "sales"
	ReportInventory ReportKind = "inventory"
	ReportUsers     ReportKind = "users"
)

// ReportKinds lists every kind GenerateReport understands.
var ReportKinds = []ReportKind{ReportSales, ReportInventory, ReportUsers}

// Report is one of SalesReport, InventoryReport or UsersReport.
type Report interface {
	Kind() ReportKind
}

type SalesReport struct {
	Type  ReportKind `json:"type"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

func (r SalesReport) Kind() ReportKind { return r.Type }

type InventoryReport struct {
	Type     ReportKind `json:"type"`
	LowStock []int      `json:"low_stock"`
}

func (r InventoryReport) Kind() ReportKind { return r.Type }

type UsersReport struct {
	Type  ReportKind `json:"type"`
	Count int        `json:"count"`
}

func (r UsersReport) Kind() ReportKind { return r.Type }

// ReportGenerator only reads from the components it was built with.
type ReportGenerator struct {
	users    *UserManager
	products *ProductManager
	orders   *OrderProcessor
}

func NewReportGenerator(users *UserManager, products *ProductManager, orders *OrderProcessor) *ReportGenerator {
	return &ReportGenerator{users: users, products: products, orders: orders}
}

// GenerateReport builds the report for kind, or returns nil for an unknown kind.
func (g *ReportGenerator) GenerateReport(kind ReportKind) Report {
	switch kind {
	case ReportSales:
		return SalesReport{
			Type:  ReportSales,
			Total: g.orders.GetSalesTotal(),
			Count: g.orders.GetSalesCount(),
		}
	case ReportInventory:
		return InventoryReport{
			Type:     ReportInventory,
			LowStock: g.products.GetLowStockItems(),
		}
	case ReportUsers:
		return UsersReport{
			Type:  ReportUsers,
			Count: g.users.GetUserCount(),
		}
	default:
		return nil
	}
}
