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

// Quote is real-time price data for an instrument.
type Quote struct {
	Buy                        *float64 `json:"buy,omitempty"`
	Sell                       *float64 `json:"sell,omitempty"`
	Last                       *float64 `json:"last,omitempty"`
	Highest                    *float64 `json:"highest,omitempty"`
	Lowest                     *float64 `json:"lowest,omitempty"`
	Change                     *float64 `json:"change,omitempty"`
	ChangePercent              *float64 `json:"changePercent,omitempty"`
	Spread                     *float64 `json:"spread,omitempty"`
	TimeOfLast                 *int64   `json:"timeOfLast,omitempty"`
	TotalValueTraded           *float64 `json:"totalValueTraded,omitempty"`
	TotalVolumeTraded          *float64 `json:"totalVolumeTraded,omitempty"`
	Updated                    *int64   `json:"updated,omitempty"`
	VolumeWeightedAveragePrice *float64 `json:"volumeWeightedAveragePrice,omitempty"`
	IsRealTime                 *bool    `json:"isRealTime,omitempty"`

	Extra Extra `json:"-"`
}

func (v *Quote) UnmarshalJSON(data []byte) error {
	type plain Quote
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = Quote(p)
	return nil
}

func (v Quote) MarshalJSON() ([]byte, error) {
	type plain Quote
	return marshalExtra(plain(v), v.Extra)
}

// Listing describes where and how an instrument is listed.
type Listing struct {
	ShortName             string  `json:"shortName"`
	TickerSymbol          *string `json:"tickerSymbol,omitempty"`
	CountryCode           *string `json:"countryCode,omitempty"`
	Currency              string  `json:"currency"`
	MarketPlaceCode       *string `json:"marketPlaceCode,omitempty"`
	MarketPlaceName       *string `json:"marketPlaceName,omitempty"`
	TickSizeListID        *string `json:"tickSizeListId,omitempty"`
	MarketTradesAvailable *bool   `json:"marketTradesAvailable,omitempty"`
}

// MarketPlace describes an exchange and its current state.
type MarketPlace struct {
	MarketOpen  bool    `json:"marketOpen"`
	TradingTime *string `json:"tradingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
	Country     *string `json:"country,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// MoneyValue is an amount with its currency.
type MoneyValue struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// ReportInfo points at a company report.
type ReportInfo struct {
	Date       string `json:"date"`
	ReportType string `json:"reportType"`
}

// Sector is a stock sector classification.
type Sector struct {
	SectorID   string `json:"sectorId"`
	SectorName string `json:"sectorName"`
}

// KeyIndicators holds key financial indicators for a stock.
type KeyIndicators struct {
	NumberOfOwners        *int        `json:"numberOfOwners,omitempty"`
	ReportDate            *string     `json:"reportDate,omitempty"`
	Volatility            *float64    `json:"volatility,omitempty"`
	Beta                  *float64    `json:"beta,omitempty"`
	PriceEarningsRatio    *float64    `json:"priceEarningsRatio,omitempty"`
	PriceSalesRatio       *float64    `json:"priceSalesRatio,omitempty"`
	EvEbitRatio           *float64    `json:"evEbitRatio,omitempty"`
	ReturnOnEquity        *float64    `json:"returnOnEquity,omitempty"`
	ReturnOnTotalAssets   *float64    `json:"returnOnTotalAssets,omitempty"`
	EquityRatio           *float64    `json:"equityRatio,omitempty"`
	CapitalTurnover       *float64    `json:"capitalTurnover,omitempty"`
	OperatingProfitMargin *float64    `json:"operatingProfitMargin,omitempty"`
	NetMargin             *float64    `json:"netMargin,omitempty"`
	MarketCapital         *MoneyValue `json:"marketCapital,omitempty"`
	EquityPerShare        *MoneyValue `json:"equityPerShare,omitempty"`
	TurnoverPerShare      *MoneyValue `json:"turnoverPerShare,omitempty"`
	EarningsPerShare      *MoneyValue `json:"earningsPerShare,omitempty"`
	DividendsPerYear      *int        `json:"dividendsPerYear,omitempty"`
	NextReport            *ReportInfo `json:"nextReport,omitempty"`
	PreviousReport        *ReportInfo `json:"previousReport,omitempty"`
	DirectYield           *float64    `json:"directYield,omitempty"`
}

// HistoricalClosingPrices holds closing prices at standard lookbacks.
type HistoricalClosingPrices struct {
	OneDay      *float64 `json:"oneDay,omitempty"`
	OneWeek     *float64 `json:"oneWeek,omitempty"`
	OneMonth    *float64 `json:"oneMonth,omitempty"`
	ThreeMonths *float64 `json:"threeMonths,omitempty"`
	StartOfYear *float64 `json:"startOfYear,omitempty"`
	OneYear     *float64 `json:"oneYear,omitempty"`
	ThreeYears  *float64 `json:"threeYears,omitempty"`
	FiveYears   *float64 `json:"fiveYears,omitempty"`
	Start       *float64 `json:"start,omitempty"`
}

// Company is issuer information for a stock.
type Company struct {
	Name          *string     `json:"name,omitempty"`
	Description   *string     `json:"description,omitempty"`
	CEO           *string     `json:"ceo,omitempty"`
	Chairman      *string     `json:"chairman,omitempty"`
	URL           *string     `json:"url,omitempty"`
	MarketCapital *MoneyValue `json:"marketCapital,omitempty"`
}

// StockInfo is the complete stock record from the market guide.
type StockInfo struct {
	OrderbookID             string                   `json:"orderbookId" validate:"required"`
	Name                    string                   `json:"name" validate:"required"`
	ISIN                    *string                  `json:"isin,omitempty"`
	InstrumentID            *string                  `json:"instrumentId,omitempty"`
	Sectors                 []Sector                 `json:"sectors,omitempty"`
	Tradable                *string                  `json:"tradable,omitempty"`
	Listing                 *Listing                 `json:"listing,omitempty"`
	MarketPlace             *MarketPlace             `json:"marketPlace,omitempty"`
	HistoricalClosingPrices *HistoricalClosingPrices `json:"historicalClosingPrices,omitempty"`
	KeyIndicators           *KeyIndicators           `json:"keyIndicators,omitempty"`
	Quote                   *Quote                   `json:"quote,omitempty"`
	Type                    *string                  `json:"type,omitempty"`
	Company                 *Company                 `json:"company,omitempty"`
	RelatedStocks           []map[string]any         `json:"relatedStocks,omitempty"`
	Dividends               []map[string]any         `json:"dividends,omitempty"`

	Extra Extra `json:"-"`
}

func (v *StockInfo) UnmarshalJSON(data []byte) error {
	type plain StockInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = StockInfo(p)
	return nil
}

func (v StockInfo) MarshalJSON() ([]byte, error) {
	type plain StockInfo
	return marshalExtra(plain(v), v.Extra)
}

// MarketplaceInfo is marketplace status and trading hours.
type MarketplaceInfo struct {
	MarketOpen        bool    `json:"marketOpen"`
	TimeLeftMs        *int64  `json:"timeLeftMs,omitempty"`
	OpeningTime       *string `json:"openingTime,omitempty"`
	TodayClosingTime  *string `json:"todayClosingTime,omitempty"`
	NormalClosingTime *string `json:"normalClosingTime,omitempty"`

	Extra Extra `json:"-"`
}

func (v *MarketplaceInfo) UnmarshalJSON(data []byte) error {
	type plain MarketplaceInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = MarketplaceInfo(p)
	return nil
}

func (v MarketplaceInfo) MarshalJSON() ([]byte, error) {
	type plain MarketplaceInfo
	return marshalExtra(plain(v), v.Extra)
}

// BrokerTradeSummary aggregates one broker's trades in an instrument.
type BrokerTradeSummary struct {
	BrokerCode   string `json:"brokerCode"`
	BrokerName   string `json:"brokerName"`
	BuyVolume    int64  `json:"buyVolume"`
	SellVolume   int64  `json:"sellVolume"`
	NetBuyVolume int64  `json:"netBuyVolume"`
}

// Trade is a single executed trade.
type Trade struct {
	Buyer           string  `json:"buyer"`
	Seller          string  `json:"seller"`
	DealTime        int64   `json:"dealTime"`
	Price           float64 `json:"price"`
	Volume          int64   `json:"volume"`
	MatchedOnMarket bool    `json:"matchedOnMarket"`
	Cancelled       bool    `json:"cancelled"`
}

// OrderSide is one side of a price level in the order book.
type OrderSide struct {
	Price       float64 `json:"price"`
	Volume      int64   `json:"volume"`
	PriceString string  `json:"priceString"`
}

// OrderLevel is a single level in the order book depth.
type OrderLevel struct {
	BuySide  *OrderSide `json:"buySide,omitempty"`
	SellSide *OrderSide `json:"sellSide,omitempty"`
}

// OrderDepth is the outstanding buy/sell levels for an instrument.
// Levels is empty outside trading hours.
type OrderDepth struct {
	ReceivedTime *int64       `json:"receivedTime,omitempty"`
	Levels       []OrderLevel `json:"levels,omitempty"`

	Extra Extra `json:"-"`
}

func (v *OrderDepth) UnmarshalJSON(data []byte) error {
	type plain OrderDepth
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = OrderDepth(p)
	return nil
}

func (v OrderDepth) MarshalJSON() ([]byte, error) {
	type plain OrderDepth
	return marshalExtra(plain(v), v.Extra)
}
