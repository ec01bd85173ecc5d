// Copyright 2026 The avanza-mcp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

import "strings"

// InstrumentType identifies the kind of a tradable instrument.
type InstrumentType string

const (
	// TypeAll means no type filter is applied.
	TypeAll InstrumentType = "ALL"

	TypeStock              InstrumentType = "STOCK"
	TypeFund               InstrumentType = "FUND"
	TypeBond               InstrumentType = "BOND"
	TypeOption             InstrumentType = "OPTION"
	TypeFutureForward      InstrumentType = "FUTURE_FORWARD"
	TypeCertificate        InstrumentType = "CERTIFICATE"
	TypeWarrant            InstrumentType = "WARRANT"
	TypeETF                InstrumentType = "ETF"
	TypeExchangeTradedFund InstrumentType = "EXCHANGE_TRADED_FUND"
	TypeIndex              InstrumentType = "INDEX"
	TypePremiumBond        InstrumentType = "PREMIUM_BOND"
	TypeSubscriptionOption InstrumentType = "SUBSCRIPTION_OPTION"
	TypeEquityLinkedBond   InstrumentType = "EQUITY_LINKED_BOND"
	TypeConvertible        InstrumentType = "CONVERTIBLE"
)

// InstrumentTypeFromString maps a lowercase tool argument ("stock",
// "fund", ...) to the upstream enum value. Unknown values pass through
// uppercased; the upstream API rejects what it does not understand.
func InstrumentTypeFromString(s string) InstrumentType {
	switch s {
	case "", "all":
		return TypeAll
	case "stock":
		return TypeStock
	case "fund":
		return TypeFund
	case "etf":
		return TypeExchangeTradedFund
	case "certificate":
		return TypeCertificate
	case "warrant":
		return TypeWarrant
	case "future_forward":
		return TypeFutureForward
	default:
		return InstrumentType(strings.ToUpper(s))
	}
}

// TimePeriod selects a window for chart data and performance metrics.
// The price-chart endpoints expect the lowercase form.
type TimePeriod string

const (
	PeriodToday       TimePeriod = "today"
	PeriodOneWeek     TimePeriod = "one_week"
	PeriodOneMonth    TimePeriod = "one_month"
	PeriodThreeMonths TimePeriod = "three_months"
	PeriodThisYear    TimePeriod = "this_year"
	PeriodOneYear     TimePeriod = "one_year"
	PeriodThreeYears  TimePeriod = "three_years"
	PeriodFiveYears   TimePeriod = "five_years"
	PeriodAllTime     TimePeriod = "infinity"
)

// Resolution is the chart bucket granularity.
type Resolution string

const (
	ResolutionMinute        Resolution = "MINUTE"
	ResolutionFiveMinutes   Resolution = "FIVE_MINUTES"
	ResolutionTenMinutes    Resolution = "TEN_MINUTES"
	ResolutionThirtyMinutes Resolution = "THIRTY_MINUTES"
	ResolutionHour          Resolution = "HOUR"
	ResolutionDay           Resolution = "DAY"
	ResolutionWeek          Resolution = "WEEK"
	ResolutionMonth         Resolution = "MONTH"
)
