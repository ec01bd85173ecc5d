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

package server

const usageGuide = `# Avanza MCP Server - Usage Guide for AI Assistants

## When NOT to Use MCP Tools

MCP tools are for interactive exploration, not bulk data processing.

**Use MCP tools for**:
- Single instrument lookups (1-5 items)
- Small comparisons (2-10 instruments)
- Quick searches and exploration
- Interactive data analysis

**Do NOT use MCP tools for**:
- Fetching data for 50+ instruments
- Bulk screening operations
- Large-scale data analysis
- Building datasets

## The Threshold Rule

| Number of Items | Action |
|----------------|---------|
| 1-20 items | Use MCP tools directly |
| 20-50 items | Ask user if they want to continue with tools OR get a script |
| 50+ items | Do NOT use MCP tools. Provide a script instead |

If you are about to call the same tool in a loop more than 20 times,
provide a script instead.

## API Endpoint Reference (For Script Writing)

All endpoints are public; no authentication is required.

### Search and discovery
` + "```bash" + `
curl 'https://www.avanza.se/_api/search/filtered-search' \
  -H 'Content-Type: application/json' \
  --data-raw '{"query": "Volvo", "limit": 10}'
` + "```" + `

### Stock data
` + "```bash" + `
# Stock info
curl 'https://www.avanza.se/_api/market-guide/stock/{id}'

# Stock quote
curl 'https://www.avanza.se/_api/market-guide/stock/{id}/quote'

# Stock chart
curl 'https://www.avanza.se/_api/price-chart/stock/{id}?timePeriod=one_month'

# Order book
curl 'https://www.avanza.se/_api/market-guide/stock/{id}/orderdepth'
` + "```" + `

### Fund data
` + "```bash" + `
# Fund info
curl 'https://www.avanza.se/_api/fund-guide/guide/{id}'

# Fund chart
curl 'https://www.avanza.se/_api/fund-guide/chart/{id}/three_years'
` + "```" + `

### Filter endpoints (bulk operations, POST)
` + "```bash" + `
# Certificates
curl 'https://www.avanza.se/_api/market-certificate-filter/' \
  -H 'Content-Type: application/json' \
  --data-raw '{"filter": {}, "offset": 0, "limit": 100, "sortBy": {"field": "name", "order": "asc"}}'

# ETFs
curl 'https://www.avanza.se/_api/market-etf-filter/' \
  -H 'Content-Type: application/json' \
  --data-raw '{"filter": {"exposures": ["usa"]}, "offset": 0, "limit": 100, "sortBy": {"field": "managementFee", "order": "asc"}}'

# Warrants
curl 'https://www.avanza.se/_api/market-warrant-filter/' \
  -H 'Content-Type: application/json' \
  --data-raw '{"filter": {"subTypes": ["TURBO"]}, "offset": 0, "limit": 100, "sortBy": {"field": "name", "order": "asc"}}'
` + "```" + `

For result sets larger than 100, advance the offset and fetch the next
page.

## Script Templates

### Bash: sequential fetcher
` + "```bash" + `
#!/bin/bash
for id in $(cat stock_ids.txt); do
  curl -s "https://www.avanza.se/_api/market-guide/stock/$id" \
    > "data/stock_$id.json"
  sleep 0.5
done
` + "```" + `

### curl + jq: filter and extract
` + "```bash" + `
curl -s 'https://www.avanza.se/_api/market-certificate-filter/' \
  -H 'Content-Type: application/json' \
  --data-raw '{"filter":{},"offset":0,"limit":100,"sortBy":{"field":"name","order":"asc"}}' \
  | jq '.certificates[] | {name, orderbookId}'
` + "```" + `

## Key Principles

1. MCP tools = interactive exploration (1-20 items)
2. Scripts = bulk data processing (50+ items)
3. Always explain why you recommend a script over tools
4. Provide working code that users can run immediately
5. Add delays (0.5-1s) between requests in loops
6. Use appropriate timeouts (10-30s) and check for HTTP errors
`

const quickStartGuide = `# Avanza MCP - Quick Decision Guide

## When to Use What

### Use MCP tools
- Single lookups: "What's Volvo's price?"
- Small comparisons: "Compare these 5 funds"
- Quick exploration: "Find ETFs with USA exposure"
- Interactive analysis: step-by-step investigation

### Provide a script
- Bulk operations: "Analyze 100 stocks"
- Large screenings: "Get all certificates"
- Dataset building: "Fetch all Swedish funds"
- Repeated operations: "Daily price monitoring"

## The Rule

- More than 50 items: provide a script
- 20 to 50 items: ask the user's preference
- Up to 20 items: use MCP tools

## Quick Script Template

` + "```bash" + `
curl 'https://www.avanza.se/_api/market-etf-filter/' \
  -H 'Content-Type: application/json' \
  --data-raw '{"filter":{},"offset":0,"limit":100,"sortBy":{"field":"name","order":"asc"}}'
` + "```" + `

## Example Responses

**User**: "Check Volvo stock"
**You**: use get_stock_quote with the instrument id from search

**User**: "Compare 10 funds"
**You**: use get_fund_info for each

**User**: "Analyze 80 Swedish stocks"
**You**: provide a script that fetches all 80 stocks

Read the full guide: avanza://docs/usage
`
