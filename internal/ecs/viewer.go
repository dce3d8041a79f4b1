/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ecs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"

	awsx "github.com/orien/lbtree/internal/aws"
	"github.com/orien/lbtree/internal/picker"
	"github.com/orien/lbtree/internal/present"
)

// Selection aborts carry distinct errors so the caller can report which
// level of the hierarchy went unselected
var (
	ErrNoClusterSelected = errors.New("no cluster selected")
	ErrNoServiceSelected = errors.New("no service selected")
)

// Viewer renders an ECS service hierarchy
type Viewer interface {
	// Show renders the tree for the service in the cluster; empty
	// identifiers are selected interactively
	Show(ctx context.Context, clusterARN, serviceARN string) error
}

// TreeViewer implements Viewer against the ECS API
type TreeViewer struct {
	client awsx.ECSAPI
	picker picker.Picker
	writer present.Writer
}

// NewTreeViewer creates a viewer with the provided collaborators
func NewTreeViewer(client awsx.ECSAPI, p picker.Picker, w present.Writer) Viewer {
	return &TreeViewer{
		client: client,
		picker: p,
		writer: w,
	}
}

// Show renders the cluster, service, task and container hierarchy
func (v *TreeViewer) Show(ctx context.Context, clusterARN, serviceARN string) error {
	if clusterARN == "" {
		arn, ok, err := v.selectCluster(ctx)
		if err != nil {
			return fmt.Errorf("selecting cluster: %w", err)
		}
		if !ok {
			return ErrNoClusterSelected
		}
		clusterARN = arn
	}

	clusters, err := v.client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
		Clusters: []string{clusterARN},
	})
	if err != nil {
		return fmt.Errorf("describing cluster: %w", err)
	}
	if len(clusters.Clusters) == 0 {
		return fmt.Errorf("cluster not found: %s", clusterARN)
	}
	present.Render(v.writer, clusterNode{clusters.Clusters[0]})

	if serviceARN == "" {
		arn, ok, err := v.selectService(ctx, clusterARN)
		if err != nil {
			return fmt.Errorf("selecting service: %w", err)
		}
		if !ok {
			return ErrNoServiceSelected
		}
		serviceARN = arn
	}

	services, err := v.client.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(clusterARN),
		Services: []string{serviceARN},
	})
	if err != nil {
		return fmt.Errorf("describing service: %w", err)
	}
	if len(services.Services) == 0 {
		return fmt.Errorf("service not found: %s", serviceARN)
	}
	service := services.Services[0]
	present.Render(v.writer, serviceNode{service})

	taskARNs, err := v.client.ListTasks(ctx, &ecs.ListTasksInput{
		Cluster:     aws.String(clusterARN),
		ServiceName: service.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	if len(taskARNs.TaskArns) == 0 {
		return nil
	}

	tasks, err := v.client.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(clusterARN),
		Tasks:   taskARNs.TaskArns,
	})
	if err != nil {
		return fmt.Errorf("describing tasks: %w", err)
	}

	// Task definitions are shared between tasks of one service; memoise
	// per ARN so each definition is fetched once per invocation
	definitionCache := make(map[string]map[string]ContainerInfo)

	for _, task := range tasks.Tasks {
		present.Render(v.writer, taskNode{task})

		if task.TaskDefinitionArn == nil {
			continue
		}

		definitions, cached := definitionCache[*task.TaskDefinitionArn]
		if !cached {
			definitions, err = v.containerDefinitions(ctx, *task.TaskDefinitionArn)
			if err != nil {
				return err
			}
			definitionCache[*task.TaskDefinitionArn] = definitions
		}

		for _, container := range task.Containers {
			name := present.StringOr(container.Name, "unknown")

			info, known := definitions[name]
			if !known {
				// Runtime container not in the definition; render what we have
				info = ContainerInfo{Name: name, Image: "unknown"}
			}
			info.LastStatus = aws.ToString(container.LastStatus)
			present.Render(v.writer, info)
		}
	}

	return nil
}

// containerDefinitions fetches a task definition and indexes its container
// definitions by name
func (v *TreeViewer) containerDefinitions(ctx context.Context, taskDefinitionARN string) (map[string]ContainerInfo, error) {
	out, err := v.client.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(taskDefinitionARN),
	})
	if err != nil {
		return nil, fmt.Errorf("describing task definition: %w", err)
	}

	definitions := make(map[string]ContainerInfo)
	if out.TaskDefinition == nil {
		return definitions, nil
	}

	for _, def := range out.TaskDefinition.ContainerDefinitions {
		name := present.StringOr(def.Name, "unknown")
		definitions[name] = ContainerInfo{
			Name:    name,
			Image:   present.StringOr(def.Image, "unknown"),
			Command: def.Command,
		}
	}
	return definitions, nil
}

// selectCluster runs the interactive picker over a streamed ListClusters
// pagination, describing each page for display names
func (v *TreeViewer) selectCluster(ctx context.Context) (string, bool, error) {
	items := make(chan picker.Item)

	var fetchErr error
	go func() {
		defer close(items)
		fetchErr = v.streamClusters(ctx, items)
	}()

	arn, ok, err := v.picker.Pick(ctx, "Select cluster: ", items)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	if fetchErr != nil {
		return "", false, fetchErr
	}
	return arn, true, nil
}

func (v *TreeViewer) streamClusters(ctx context.Context, items chan<- picker.Item) error {
	paginator := ecs.NewListClustersPaginator(v.client, &ecs.ListClustersInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("fetching clusters page: %w", err)
		}
		if len(page.ClusterArns) == 0 {
			continue
		}

		clusters, err := v.client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
			Clusters: page.ClusterArns,
		})
		if err != nil {
			return fmt.Errorf("describing clusters: %w", err)
		}

		for _, cluster := range clusters.Clusters {
			items <- picker.Item{
				Display: fmt.Sprintf("%s (%s)",
					present.StringOr(cluster.ClusterName, "unknown"),
					present.StringOr(cluster.Status, "unknown")),
				ID: aws.ToString(cluster.ClusterArn),
			}
		}
	}

	return nil
}

// selectService runs the interactive picker over a streamed ListServices
// pagination for the cluster
func (v *TreeViewer) selectService(ctx context.Context, clusterARN string) (string, bool, error) {
	items := make(chan picker.Item)

	var fetchErr error
	go func() {
		defer close(items)
		fetchErr = v.streamServices(ctx, clusterARN, items)
	}()

	arn, ok, err := v.picker.Pick(ctx, "Select service: ", items)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	if fetchErr != nil {
		return "", false, fetchErr
	}
	return arn, true, nil
}

func (v *TreeViewer) streamServices(ctx context.Context, clusterARN string, items chan<- picker.Item) error {
	paginator := ecs.NewListServicesPaginator(v.client, &ecs.ListServicesInput{
		Cluster: aws.String(clusterARN),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("fetching services page: %w", err)
		}
		if len(page.ServiceArns) == 0 {
			continue
		}

		services, err := v.client.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  aws.String(clusterARN),
			Services: page.ServiceArns,
		})
		if err != nil {
			return fmt.Errorf("describing services: %w", err)
		}

		for _, service := range services.Services {
			items <- picker.Item{
				Display: fmt.Sprintf("%s (%s) %d/%d",
					present.StringOr(service.ServiceName, "unknown"),
					present.StringOr(service.Status, "unknown"),
					service.RunningCount,
					service.DesiredCount),
				ID: aws.ToString(service.ServiceArn),
			}
		}
	}

	return nil
}
