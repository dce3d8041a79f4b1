/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package apigateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"

	awsx "github.com/orien/lbtree/internal/aws"
	"github.com/orien/lbtree/internal/picker"
	"github.com/orien/lbtree/internal/present"
)

// ErrNoSelection is returned when the user aborts the interactive picker
var ErrNoSelection = errors.New("no REST API selected")

// Viewer renders an API Gateway REST API hierarchy
type Viewer interface {
	// Show renders the tree for apiID; with an empty ID the user selects a
	// REST API interactively
	Show(ctx context.Context, apiID string) error
}

// TreeViewer implements Viewer against the API Gateway API
type TreeViewer struct {
	client awsx.APIGatewayAPI
	picker picker.Picker
	writer present.Writer

	// errOut receives warnings about methods whose integration could not
	// be fetched; defaults to stderr
	errOut io.Writer
}

// NewTreeViewer creates a viewer with the provided collaborators
func NewTreeViewer(client awsx.APIGatewayAPI, p picker.Picker, w present.Writer) Viewer {
	return &TreeViewer{
		client: client,
		picker: p,
		writer: w,
		errOut: os.Stderr,
	}
}

// Show renders the REST API hierarchy
func (v *TreeViewer) Show(ctx context.Context, apiID string) error {
	if apiID == "" {
		id, ok, err := v.selectRestAPI(ctx)
		if err != nil {
			return fmt.Errorf("selecting REST API: %w", err)
		}
		if !ok {
			return ErrNoSelection
		}
		apiID = id
	}

	api, err := v.client.GetRestApi(ctx, &apigateway.GetRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return fmt.Errorf("fetching REST API: %w", err)
	}
	present.Render(v.writer, restAPINode{
		name: present.StringOr(api.Name, "unknown"),
		id:   present.StringOr(api.Id, "unknown"),
	})

	paginator := apigateway.NewGetResourcesPaginator(v.client, &apigateway.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("fetching resources: %w", err)
		}

		for _, resource := range page.Items {
			present.Render(v.writer, resourceNode{resource})

			// Sort methods so output is deterministic; the API returns a map
			methods := make([]string, 0, len(resource.ResourceMethods))
			for httpMethod := range resource.ResourceMethods {
				methods = append(methods, httpMethod)
			}
			sort.Strings(methods)

			for _, httpMethod := range methods {
				present.Render(v.writer, methodNode{
					httpMethod: httpMethod,
					method:     resource.ResourceMethods[httpMethod],
				})

				integration, err := v.client.GetIntegration(ctx, &apigateway.GetIntegrationInput{
					RestApiId:  aws.String(apiID),
					ResourceId: resource.Id,
					HttpMethod: aws.String(httpMethod),
				})
				if err != nil {
					// Some methods have no integration; warn and move on
					fmt.Fprintf(v.errOut, "Warning: could not fetch integration for %s %s: %v\n",
						present.StringOr(resource.Path, "unknown"), httpMethod, err)
					continue
				}

				present.Render(v.writer, integrationNode{
					integrationType: integration.Type,
					uri:             integration.Uri,
				})
			}
		}
	}

	return nil
}

// selectRestAPI runs the interactive picker over a streamed GetRestApis
// pagination
func (v *TreeViewer) selectRestAPI(ctx context.Context) (string, bool, error) {
	items := make(chan picker.Item)

	var fetchErr error
	go func() {
		defer close(items)
		fetchErr = v.streamRestAPIs(ctx, items)
	}()

	id, ok, err := v.picker.Pick(ctx, "Select REST API: ", items)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	if fetchErr != nil {
		return "", false, fetchErr
	}
	return id, true, nil
}

func (v *TreeViewer) streamRestAPIs(ctx context.Context, items chan<- picker.Item) error {
	paginator := apigateway.NewGetRestApisPaginator(v.client, &apigateway.GetRestApisInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("fetching REST APIs page: %w", err)
		}

		for _, api := range page.Items {
			items <- picker.Item{
				Display: fmt.Sprintf("%s (%s)",
					present.StringOr(api.Name, "unknown"),
					present.StringOr(api.Id, "unknown")),
				ID: aws.ToString(api.Id),
			}
		}
	}

	return nil
}
