package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/xitongsys/parquet-go/schema"
)

// BaseRow is the common structure for all report rows
type BaseRow struct {
	Timestamp  int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	ReportType string `json:"reportType" parquet:"name=reportType,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// MenuEconomicsRow is one menu's cost, profit and pricing figures
type MenuEconomicsRow struct {
	BaseRow
	MenuID             string  `json:"menuId" parquet:"name=menuId,type=BYTE_ARRAY,convertedtype=UTF8"`
	MenuName           string  `json:"menuName" parquet:"name=menuName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category           string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	SellPrice          float64 `json:"sellPrice" parquet:"name=sellPrice,type=DOUBLE"`
	IngredientCost     float64 `json:"ingredientCost" parquet:"name=ingredientCost,type=DOUBLE"`
	MissingIngredients int32   `json:"missingIngredients" parquet:"name=missingIngredients,type=INT32"`
	OverheadPerUnit    float64 `json:"overheadPerUnit" parquet:"name=overheadPerUnit,type=DOUBLE"`
	Cost               float64 `json:"cost" parquet:"name=cost,type=DOUBLE"`
	NetProfit          float64 `json:"netProfit" parquet:"name=netProfit,type=DOUBLE"`
	MarginPercent      float64 `json:"marginPercent" parquet:"name=marginPercent,type=DOUBLE"`
	RecommendedPrice   float64 `json:"recommendedPrice" parquet:"name=recommendedPrice,type=DOUBLE"`
}

// OverheadMonthlyRow is one overhead record's resolved monthly amount
type OverheadMonthlyRow struct {
	BaseRow
	OverheadID    string  `json:"overheadId" parquet:"name=overheadId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category      string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	MonthlyAmount float64 `json:"monthlyAmount" parquet:"name=monthlyAmount,type=DOUBLE"`
}

// OverheadAllocationRow is the per-unit overhead assigned to a menu category
type OverheadAllocationRow struct {
	BaseRow
	Category           string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	SalesMixPercent    float64 `json:"salesMixPercent" parquet:"name=salesMixPercent,type=DOUBLE"`
	OverheadMixPercent float64 `json:"overheadMixPercent" parquet:"name=overheadMixPercent,type=DOUBLE"`
	PerUnitOverhead    float64 `json:"perUnitOverhead" parquet:"name=perUnitOverhead,type=DOUBLE"`
}

// ScenarioRow is one metric set of a what-if run; each scenario emits an
// as-configured row and an overhead-inclusive row
type ScenarioRow struct {
	BaseRow
	Name              string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Variant           string  `json:"variant" parquet:"name=variant,type=BYTE_ARRAY,convertedtype=UTF8"`
	AveragePrice      float64 `json:"averagePrice" parquet:"name=averagePrice,type=DOUBLE"`
	IngredientCost    float64 `json:"ingredientCost" parquet:"name=ingredientCost,type=DOUBLE"`
	OverheadPerUnit   float64 `json:"overheadPerUnit" parquet:"name=overheadPerUnit,type=DOUBLE"`
	Cost              float64 `json:"cost" parquet:"name=cost,type=DOUBLE"`
	NetProfit         float64 `json:"netProfit" parquet:"name=netProfit,type=DOUBLE"`
	MarginPercent     float64 `json:"marginPercent" parquet:"name=marginPercent,type=DOUBLE"`
	MonthlyProfit     float64 `json:"monthlyProfit" parquet:"name=monthlyProfit,type=DOUBLE"`
}

// TaxEstimateRow is the period-scaled VAT and income-tax estimate
type TaxEstimateRow struct {
	BaseRow
	Period         string  `json:"period" parquet:"name=period,type=BYTE_ARRAY,convertedtype=UTF8"`
	SalesSupply    float64 `json:"salesSupply" parquet:"name=salesSupply,type=DOUBLE"`
	SalesVAT       float64 `json:"salesVat" parquet:"name=salesVat,type=DOUBLE"`
	PurchaseSupply float64 `json:"purchaseSupply" parquet:"name=purchaseSupply,type=DOUBLE"`
	PurchaseVAT    float64 `json:"purchaseVat" parquet:"name=purchaseVat,type=DOUBLE"`
	VATPayable     float64 `json:"vatPayable" parquet:"name=vatPayable,type=DOUBLE"`
	ProfitEstimate float64 `json:"profitEstimate" parquet:"name=profitEstimate,type=DOUBLE"`
	AssumedTax     float64 `json:"assumedTax" parquet:"name=assumedTax,type=DOUBLE"`
}

const (
	TopicMenuEconomics      = "menu_economics"
	TopicOverheadMonthly    = "overhead_monthly"
	TopicOverheadAllocation = "overhead_allocation"
	TopicScenarioResults    = "scenario_results"
	TopicTaxEstimates       = "tax_estimates"
)

func GetSchema(reportType string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch reportType {
	case TopicMenuEconomics:
		sh, err = schema.NewSchemaHandlerFromStruct(new(MenuEconomicsRow))
	case TopicOverheadMonthly:
		sh, err = schema.NewSchemaHandlerFromStruct(new(OverheadMonthlyRow))
	case TopicOverheadAllocation:
		sh, err = schema.NewSchemaHandlerFromStruct(new(OverheadAllocationRow))
	case TopicScenarioResults:
		sh, err = schema.NewSchemaHandlerFromStruct(new(ScenarioRow))
	case TopicTaxEstimates:
		sh, err = schema.NewSchemaHandlerFromStruct(new(TaxEstimateRow))
	default:
		return nil, fmt.Errorf("unknown report type: %s", reportType)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", reportType, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", reportType, err)
	}

	return sh, nil
}

func NewBaseRow(reportType string, timestamp time.Time) BaseRow {
	return BaseRow{
		Timestamp:  timestamp.Unix(),
		ReportType: reportType,
	}
}
