/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package alb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"golang.org/x/sync/errgroup"

	awsx "github.com/orien/lbtree/internal/aws"
	"github.com/orien/lbtree/internal/picker"
	"github.com/orien/lbtree/internal/present"
)

// ErrNoSelection is returned when the user aborts the interactive picker
var ErrNoSelection = errors.New("no load balancer selected")

// Viewer renders an Application Load Balancer hierarchy
type Viewer interface {
	// Show renders the tree for loadBalancerARN; with an empty ARN the user
	// selects a load balancer interactively
	Show(ctx context.Context, loadBalancerARN string) error
}

// TreeViewer implements Viewer against the ELBv2 API
type TreeViewer struct {
	client awsx.ELBV2API
	picker picker.Picker
	writer present.Writer
}

// NewTreeViewer creates a viewer with the provided collaborators
func NewTreeViewer(client awsx.ELBV2API, p picker.Picker, w present.Writer) Viewer {
	return &TreeViewer{
		client: client,
		picker: p,
		writer: w,
	}
}

// Show renders the load balancer hierarchy
func (v *TreeViewer) Show(ctx context.Context, loadBalancerARN string) error {
	if loadBalancerARN == "" {
		arn, ok, err := v.selectLoadBalancer(ctx)
		if err != nil {
			return fmt.Errorf("selecting load balancer: %w", err)
		}
		if !ok {
			return ErrNoSelection
		}
		loadBalancerARN = arn
	}

	out, err := v.client.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
		LoadBalancerArns: []string{loadBalancerARN},
	})
	if err != nil {
		return fmt.Errorf("describing load balancer: %w", err)
	}
	if len(out.LoadBalancers) == 0 {
		return fmt.Errorf("load balancer not found: %s", loadBalancerARN)
	}
	present.Render(v.writer, loadBalancerNode{out.LoadBalancers[0]})

	// The listener and target-group branches are independent describe
	// chains; fetch them concurrently and render once both are in.
	var listenerNodes, targetGroupNodes []present.Node
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listenerNodes, err = v.listenerBranch(gctx, loadBalancerARN)
		return err
	})
	g.Go(func() error {
		var err error
		targetGroupNodes, err = v.targetGroupBranch(gctx, loadBalancerARN)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	present.RenderAll(v.writer, listenerNodes)
	present.RenderAll(v.writer, targetGroupNodes)

	return nil
}

// listenerBranch collects listener, rule and action nodes in render order
func (v *TreeViewer) listenerBranch(ctx context.Context, loadBalancerARN string) ([]present.Node, error) {
	var nodes []present.Node

	listeners, err := v.client.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
		LoadBalancerArn: aws.String(loadBalancerARN),
	})
	if err != nil {
		return nil, fmt.Errorf("describing listeners for load balancer: %w", err)
	}

	for _, listener := range listeners.Listeners {
		nodes = append(nodes, listenerNode{listener})

		if listener.ListenerArn == nil {
			continue
		}

		rules, err := v.client.DescribeRules(ctx, &elbv2.DescribeRulesInput{
			ListenerArn: listener.ListenerArn,
		})
		if err != nil {
			return nil, fmt.Errorf("describing rules for listener: %w", err)
		}

		for _, rule := range rules.Rules {
			nodes = append(nodes, ruleNode{rule})
			for _, action := range rule.Actions {
				nodes = append(nodes, actionNode{action})
			}
		}
	}

	return nodes, nil
}

// targetGroupBranch collects target-group and target nodes in render order
func (v *TreeViewer) targetGroupBranch(ctx context.Context, loadBalancerARN string) ([]present.Node, error) {
	var nodes []present.Node

	groups, err := v.client.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{
		LoadBalancerArn: aws.String(loadBalancerARN),
	})
	if err != nil {
		return nil, fmt.Errorf("describing target groups: %w", err)
	}

	for _, group := range groups.TargetGroups {
		nodes = append(nodes, targetGroupNode{group})

		if group.TargetGroupArn == nil {
			continue
		}

		targets, err := v.client.DescribeTargetHealth(ctx, &elbv2.DescribeTargetHealthInput{
			TargetGroupArn: group.TargetGroupArn,
		})
		if err != nil {
			return nil, fmt.Errorf("describing targets in target group: %w", err)
		}

		for _, target := range targets.TargetHealthDescriptions {
			nodes = append(nodes, targetNode{target})
		}
	}

	return nodes, nil
}

// selectLoadBalancer runs the interactive picker over a streamed
// DescribeLoadBalancers pagination
func (v *TreeViewer) selectLoadBalancer(ctx context.Context) (string, bool, error) {
	items := make(chan picker.Item)

	var fetchErr error
	go func() {
		defer close(items)
		fetchErr = v.streamLoadBalancers(ctx, items)
	}()

	arn, ok, err := v.picker.Pick(ctx, "Select load balancer: ", items)
	if err != nil {
		return "", false, err
	}
	if !ok {
		// User abort discards any fetch error
		return "", false, nil
	}
	// Pick consumed the channel to completion, so fetchErr is settled
	if fetchErr != nil {
		return "", false, fetchErr
	}
	return arn, true, nil
}

func (v *TreeViewer) streamLoadBalancers(ctx context.Context, items chan<- picker.Item) error {
	paginator := elbv2.NewDescribeLoadBalancersPaginator(v.client, &elbv2.DescribeLoadBalancersInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("fetching load balancers page: %w", err)
		}

		for _, lb := range page.LoadBalancers {
			items <- picker.Item{
				Display: fmt.Sprintf("%s (%s)",
					present.StringOr(lb.LoadBalancerName, "unknown"),
					present.StringOr(lb.DNSName, "unknown")),
				ID: aws.ToString(lb.LoadBalancerArn),
			}
		}
	}

	return nil
}
