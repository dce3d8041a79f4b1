/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ecs

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/orien/lbtree/internal/present"
)

// Indent levels for the ECS hierarchy
const (
	indentCluster   = 0
	indentService   = 2
	indentTask      = 4
	indentContainer = 6
)

type clusterNode struct {
	cluster types.Cluster
}

func (n clusterNode) Content() string {
	return fmt.Sprintf("Cluster %q status=%s services=%d running-tasks=%d pending-tasks=%d",
		present.StringOr(n.cluster.ClusterName, "unknown"),
		present.StringOr(n.cluster.Status, "unknown"),
		n.cluster.ActiveServicesCount,
		n.cluster.RunningTasksCount,
		n.cluster.PendingTasksCount)
}

func (n clusterNode) Indent() int { return indentCluster }

type serviceNode struct {
	service types.Service
}

func (n serviceNode) Content() string {
	return fmt.Sprintf("Service %q status=%s desired=%d running=%d pending=%d",
		present.StringOr(n.service.ServiceName, "unknown"),
		present.StringOr(n.service.Status, "unknown"),
		n.service.DesiredCount,
		n.service.RunningCount,
		n.service.PendingCount)
}

func (n serviceNode) Indent() int { return indentService }

type taskNode struct {
	task types.Task
}

func (n taskNode) Content() string {
	launchType := string(n.task.LaunchType)
	if launchType == "" {
		launchType = "unknown"
	}
	return fmt.Sprintf("Task %s status=%s desired=%s launch-type=%s",
		taskID(n.task.TaskArn),
		present.StringOr(n.task.LastStatus, "unknown"),
		present.StringOr(n.task.DesiredStatus, "unknown"),
		launchType)
}

func (n taskNode) Indent() int { return indentTask }

// taskID extracts the task ID from its ARN (the part after the last slash)
func taskID(arn *string) string {
	if arn == nil {
		return "unknown"
	}
	if idx := strings.LastIndexByte(*arn, '/'); idx >= 0 {
		return (*arn)[idx+1:]
	}
	return *arn
}

// ContainerInfo combines a container's runtime state with its definition
type ContainerInfo struct {
	Name       string
	Image      string
	Command    []string
	LastStatus string
}

func (n ContainerInfo) Content() string {
	status := n.LastStatus
	if status == "" {
		status = "unknown"
	}
	content := fmt.Sprintf("Container %q image=%s status=%s", n.Name, n.Image, status)
	if len(n.Command) > 0 {
		content += fmt.Sprintf(" command=%q", n.Command)
	}
	return content
}

func (n ContainerInfo) Indent() int { return indentContainer }
