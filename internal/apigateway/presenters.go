/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package apigateway

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	"github.com/orien/lbtree/internal/present"
)

// Indent levels for the REST API hierarchy
const (
	indentRestAPI     = 0
	indentResource    = 2
	indentMethod      = 4
	indentIntegration = 6
)

type restAPINode struct {
	name string
	id   string
}

func (n restAPINode) Content() string {
	return fmt.Sprintf("REST API %q (%s)", n.name, n.id)
}

func (n restAPINode) Indent() int { return indentRestAPI }

type resourceNode struct {
	resource types.Resource
}

func (n resourceNode) Content() string {
	return fmt.Sprintf("%s (id=%s)",
		present.StringOr(n.resource.Path, "/"),
		present.StringOr(n.resource.Id, "unknown"))
}

func (n resourceNode) Indent() int { return indentResource }

type methodNode struct {
	httpMethod string
	method     types.Method
}

func (n methodNode) Content() string {
	return fmt.Sprintf("%s auth=%s",
		n.httpMethod,
		present.StringOr(n.method.AuthorizationType, "NONE"))
}

func (n methodNode) Indent() int { return indentMethod }

type integrationNode struct {
	integrationType types.IntegrationType
	uri             *string
}

func (n integrationNode) Content() string {
	integrationType := string(n.integrationType)
	if integrationType == "" {
		integrationType = "unknown"
	}
	return fmt.Sprintf("Integration type=%s uri=%s",
		integrationType,
		present.StringOr(n.uri, "none"))
}

func (n integrationNode) Indent() int { return indentIntegration }
