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

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// addIDTool registers a tool whose only argument is an instrument id.
// Most lookup tools share this shape.
func (s *Server) addIDTool(name, description, idDescription string, fetch func(ctx context.Context, id string) (any, error)) {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"instrument_id": idArgument(idDescription),
			},
			Required: []string{"instrument_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !s.rateLimiter.AllowCall() {
			return errorResponse("Rate limit exceeded. Please try again later."), nil
		}

		instrumentID, err := request.RequireString("instrument_id")
		if err != nil {
			return errorResponse("Missing or invalid 'instrument_id' argument"), nil
		}

		result, err := fetch(ctx, instrumentID)
		if err != nil {
			return s.serviceErrorResponse(name, err), nil
		}
		return jsonResponse(result), nil
	})
}
