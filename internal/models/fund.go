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

// FundPerformance holds fund returns over standard time periods, in
// percent.
type FundPerformance struct {
	Today       *float64 `json:"today,omitempty"`
	OneWeek     *float64 `json:"oneWeek,omitempty"`
	OneMonth    *float64 `json:"oneMonth,omitempty"`
	ThreeMonths *float64 `json:"threeMonths,omitempty"`
	ThisYear    *float64 `json:"thisYear,omitempty"`
	OneYear     *float64 `json:"oneYear,omitempty"`
	ThreeYears  *float64 `json:"threeYears,omitempty"`
	FiveYears   *float64 `json:"fiveYears,omitempty"`
	TenYears    *float64 `json:"tenYears,omitempty"`
}

// FundFee holds fund fee percentages.
type FundFee struct {
	OngoingCharges *float64 `json:"ongoingCharges,omitempty"`
	EntryCharge    *float64 `json:"entryCharge,omitempty"`
	ExitCharge     *float64 `json:"exitCharge,omitempty"`
}

// AllocationPoint is one slice of an allocation chart (country, sector,
// or holding).
type AllocationPoint struct {
	Name *string  `json:"name,omitempty"`
	Y    *float64 `json:"y,omitempty"`
}

// FundInfo is the complete fund record from the fund guide.
type FundInfo struct {
	ID          *string `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	ISIN        *string `json:"isin,omitempty"`
	Description *string `json:"description,omitempty"`

	NAV      *float64 `json:"nav,omitempty"`
	NAVDate  *string  `json:"navDate,omitempty"`
	Currency *string  `json:"currency,omitempty"`

	Development            *FundPerformance `json:"development,omitempty"`
	ChangeSinceThreeMonths *float64         `json:"changeSinceThreeMonths,omitempty"`
	ChangeSinceOneYear     *float64         `json:"changeSinceOneYear,omitempty"`

	Risk              *int     `json:"risk,omitempty"`
	RiskLevel         *string  `json:"riskLevel,omitempty"`
	Rating            *int     `json:"rating,omitempty"`
	StandardDeviation *float64 `json:"standardDeviation,omitempty"`
	SharpeRatio       *float64 `json:"sharpeRatio,omitempty"`

	Fee *FundFee `json:"fee,omitempty"`

	FundCompany  *string  `json:"fundCompany,omitempty"`
	FundTypeName *string  `json:"fundTypeName,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Capital      *float64 `json:"capital,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`

	Tradeable  *bool    `json:"tradeable,omitempty"`
	BuyFee     *float64 `json:"buyFee,omitempty"`
	SellFee    *float64 `json:"sellFee,omitempty"`
	Prospectus *string  `json:"prospectus,omitempty"`

	CountryChartData []AllocationPoint `json:"countryChartData,omitempty"`
	SectorChartData  []AllocationPoint `json:"sectorChartData,omitempty"`
	HoldingChartData []AllocationPoint `json:"holdingChartData,omitempty"`
	PortfolioDate    *string           `json:"portfolioDate,omitempty"`

	LastUpdated *string `json:"lastUpdated,omitempty"`

	Extra Extra `json:"-"`
}

func (v *FundInfo) UnmarshalJSON(data []byte) error {
	type plain FundInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = FundInfo(p)
	return nil
}

func (v FundInfo) MarshalJSON() ([]byte, error) {
	type plain FundInfo
	return marshalExtra(plain(v), v.Extra)
}

// ProductInvolvement is one product exposure entry in the sustainability
// profile.
type ProductInvolvement struct {
	Product            string  `json:"product"`
	ProductDescription string  `json:"productDescription"`
	Value              float64 `json:"value"`
	Name               string  `json:"name"`
}

// SustainabilityGoal is a UN Sustainable Development Goal reference.
type SustainabilityGoal struct {
	GoalID          *int    `json:"goalId,omitempty"`
	GoalName        *string `json:"goalName,omitempty"`
	GoalDescription *string `json:"goalDescription,omitempty"`
}

// FundSustainability holds ESG and sustainability metrics for a fund.
type FundSustainability struct {
	LowCarbon                         *bool                `json:"lowCarbon,omitempty"`
	ESGScore                          *float64             `json:"esgScore,omitempty"`
	EnvironmentalScore                *float64             `json:"environmentalScore,omitempty"`
	SocialScore                       *float64             `json:"socialScore,omitempty"`
	GovernanceScore                   *float64             `json:"governanceScore,omitempty"`
	ControversyScore                  *float64             `json:"controversyScore,omitempty"`
	CarbonSolutionsInvolvement        *float64             `json:"carbonSolutionsInvolvement,omitempty"`
	ProductInvolvements               []ProductInvolvement `json:"productInvolvements,omitempty"`
	SustainabilityRating              *int                 `json:"sustainabilityRating,omitempty"`
	SustainabilityRatingCategoryName  *string              `json:"sustainabilityRatingCategoryName,omitempty"`
	FossilFuelInvolvement             *float64             `json:"fossilFuelInvolvement,omitempty"`
	CarbonRiskScore                   *float64             `json:"carbonRiskScore,omitempty"`
	EnvironmentalRating               *int                 `json:"environmentalRating,omitempty"`
	SocialRating                      *int                 `json:"socialRating,omitempty"`
	GovernanceRating                  *int                 `json:"governanceRating,omitempty"`
	Svanen                            *bool                `json:"svanen,omitempty"`
	SustainabilityDevelopmentGoals    []SustainabilityGoal `json:"sustainabilityDevelopmentGoals,omitempty"`

	Extra Extra `json:"-"`
}

func (v *FundSustainability) UnmarshalJSON(data []byte) error {
	type plain FundSustainability
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = FundSustainability(p)
	return nil
}

func (v FundSustainability) MarshalJSON() ([]byte, error) {
	type plain FundSustainability
	return marshalExtra(plain(v), v.Extra)
}

// FundChartPoint is one point in a fund performance series.
type FundChartPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// FundChart is a fund's historical performance series.
type FundChart struct {
	ID        string           `json:"id" validate:"required"`
	DataSerie []FundChartPoint `json:"dataSerie"`
	Name      *string          `json:"name,omitempty"`
	FromDate  *string          `json:"fromDate,omitempty"`
	ToDate    *string          `json:"toDate,omitempty"`

	Extra Extra `json:"-"`
}

func (v *FundChart) UnmarshalJSON(data []byte) error {
	type plain FundChart
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = FundChart(p)
	return nil
}

func (v FundChart) MarshalJSON() ([]byte, error) {
	type plain FundChart
	return marshalExtra(plain(v), v.Extra)
}

// FundChartPeriod is a fund's performance over one named period.
type FundChartPeriod struct {
	TimePeriod string  `json:"timePeriod"`
	Change     float64 `json:"change"`
	StartDate  string  `json:"startDate"`
}

// FundDescription is the fund description and category text.
type FundDescription struct {
	Response                    string `json:"response"`
	Heading                     string `json:"heading"`
	DetailedCategoryDescription string `json:"detailedCategoryDescription"`

	Extra Extra `json:"-"`
}

func (v *FundDescription) UnmarshalJSON(data []byte) error {
	type plain FundDescription
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = FundDescription(p)
	return nil
}

func (v FundDescription) MarshalJSON() ([]byte, error) {
	type plain FundDescription
	return marshalExtra(plain(v), v.Extra)
}
