/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package alb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	awsx "github.com/orien/lbtree/internal/aws"
	"github.com/orien/lbtree/internal/picker"
	"github.com/orien/lbtree/internal/present"
)

const testLBARN = "arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/test-lb/abc123"

func describeOutput() *elbv2.DescribeLoadBalancersOutput {
	return &elbv2.DescribeLoadBalancersOutput{
		LoadBalancers: []types.LoadBalancer{
			{
				LoadBalancerArn:  aws.String(testLBARN),
				LoadBalancerName: aws.String("test-lb"),
				DNSName:          aws.String("test-lb.elb.amazonaws.com"),
			},
		},
	}
}

func TestTreeViewer_Show_RendersFullTree(t *testing.T) {
	client := &awsx.MockELBV2API{}
	writer := present.NewBufferWriter()

	client.On("DescribeLoadBalancers", mock.Anything, mock.Anything).Return(describeOutput(), nil).Once()
	client.On("DescribeListeners", mock.Anything, mock.Anything).Return(&elbv2.DescribeListenersOutput{
		Listeners: []types.Listener{
			{
				ListenerArn: aws.String("arn:listener"),
				Protocol:    types.ProtocolEnumHttp,
				Port:        aws.Int32(80),
			},
		},
	}, nil).Once()
	client.On("DescribeRules", mock.Anything, mock.Anything).Return(&elbv2.DescribeRulesOutput{
		Rules: []types.Rule{
			{
				Priority:  aws.String("10"),
				IsDefault: aws.Bool(false),
				Actions: []types.Action{
					{
						Type: types.ActionTypeEnumFixedResponse,
						FixedResponseConfig: &types.FixedResponseActionConfig{
							MessageBody: aws.String("nope"),
							StatusCode:  aws.String("403"),
						},
					},
				},
			},
			{
				Priority:  aws.String("default"),
				IsDefault: aws.Bool(true),
				Actions: []types.Action{
					{Type: types.ActionTypeEnumForward},
				},
			},
		},
	}, nil).Once()
	client.On("DescribeTargetGroups", mock.Anything, mock.Anything).Return(&elbv2.DescribeTargetGroupsOutput{
		TargetGroups: []types.TargetGroup{
			{
				TargetGroupArn:  aws.String("arn:tg"),
				TargetGroupName: aws.String("test-tg"),
				Protocol:        types.ProtocolEnumHttp,
				Port:            aws.Int32(80),
			},
		},
	}, nil).Once()
	client.On("DescribeTargetHealth", mock.Anything, mock.Anything).Return(&elbv2.DescribeTargetHealthOutput{
		TargetHealthDescriptions: []types.TargetHealthDescription{
			{
				Target: &types.TargetDescription{
					Id:   aws.String("i-abc"),
					Port: aws.Int32(8080),
				},
			},
		},
	}, nil).Once()

	viewer := NewTreeViewer(client, nil, writer)
	err := viewer.Show(context.Background(), testLBARN)
	require.NoError(t, err)

	expected := "-> Load balancer (test-lb.elb.amazonaws.com)\n" +
		"  -> Listener protocol=HTTP port=80\n" +
		"    -> Rule priority=10 is-default=false\n" +
		"      -> Action (fixed-response) msg=\"nope\" status-code=403\n" +
		"    -> Rule priority=default is-default=true\n" +
		"      -> Action (forward)\n" +
		"  -> Target group \"test-tg\" protocol=HTTP port=80\n" +
		"    -> Target id=i-abc port=8080\n"
	assert.Equal(t, expected, writer.String())
	client.AssertExpectations(t)
}

func TestTreeViewer_Show_LoadBalancerNotFound(t *testing.T) {
	client := &awsx.MockELBV2API{}
	client.On("DescribeLoadBalancers", mock.Anything, mock.Anything).
		Return(&elbv2.DescribeLoadBalancersOutput{}, nil).Once()

	viewer := NewTreeViewer(client, nil, present.NewBufferWriter())
	err := viewer.Show(context.Background(), testLBARN)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load balancer not found")
}

func TestTreeViewer_Show_DescribeError(t *testing.T) {
	client := &awsx.MockELBV2API{}
	client.On("DescribeLoadBalancers", mock.Anything, mock.Anything).
		Return(nil, errors.New("access denied")).Once()

	viewer := NewTreeViewer(client, nil, present.NewBufferWriter())
	err := viewer.Show(context.Background(), testLBARN)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "describing load balancer")
}

func TestTreeViewer_Show_BranchErrorAbortsDisplay(t *testing.T) {
	client := &awsx.MockELBV2API{}
	writer := present.NewBufferWriter()

	client.On("DescribeLoadBalancers", mock.Anything, mock.Anything).Return(describeOutput(), nil).Once()
	client.On("DescribeListeners", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))
	client.On("DescribeTargetGroups", mock.Anything, mock.Anything).
		Return(&elbv2.DescribeTargetGroupsOutput{}, nil).Maybe()

	viewer := NewTreeViewer(client, nil, writer)
	err := viewer.Show(context.Background(), testLBARN)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "describing listeners for load balancer")

	// Only the root line was rendered before the failure
	assert.Equal(t, "-> Load balancer (test-lb.elb.amazonaws.com)\n", writer.String())
}

func TestTreeViewer_Show_InteractiveSelection(t *testing.T) {
	client := &awsx.MockELBV2API{}
	writer := present.NewBufferWriter()
	mockPicker := &picker.MockPicker{}

	// First call: the picker's streamed pagination; second call: the direct
	// describe for the selected ARN
	listCall := func(in *elbv2.DescribeLoadBalancersInput) bool { return len(in.LoadBalancerArns) == 0 }
	showCall := func(in *elbv2.DescribeLoadBalancersInput) bool { return len(in.LoadBalancerArns) == 1 }

	client.On("DescribeLoadBalancers", mock.Anything, mock.MatchedBy(listCall)).
		Return(describeOutput(), nil).Once()
	client.On("DescribeLoadBalancers", mock.Anything, mock.MatchedBy(showCall)).
		Return(describeOutput(), nil).Once()
	client.On("DescribeListeners", mock.Anything, mock.Anything).
		Return(&elbv2.DescribeListenersOutput{}, nil).Once()
	client.On("DescribeTargetGroups", mock.Anything, mock.Anything).
		Return(&elbv2.DescribeTargetGroupsOutput{}, nil).Once()

	mockPicker.On("Pick", mock.Anything, "Select load balancer: ").
		Return(testLBARN, true, nil).Once()

	viewer := NewTreeViewer(client, mockPicker, writer)
	err := viewer.Show(context.Background(), "")
	require.NoError(t, err)

	// The streamed items carried display text and the ARN
	require.Len(t, mockPicker.Received, 1)
	assert.Equal(t, "test-lb (test-lb.elb.amazonaws.com)", mockPicker.Received[0].Display)
	assert.Equal(t, testLBARN, mockPicker.Received[0].ID)

	assert.Contains(t, writer.String(), "-> Load balancer (test-lb.elb.amazonaws.com)")
	mockPicker.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestTreeViewer_Show_AbortedSelection(t *testing.T) {
	client := &awsx.MockELBV2API{}
	mockPicker := &picker.MockPicker{}

	client.On("DescribeLoadBalancers", mock.Anything, mock.Anything).
		Return(describeOutput(), nil).Once()
	mockPicker.On("Pick", mock.Anything, "Select load balancer: ").
		Return("", false, nil).Once()

	viewer := NewTreeViewer(client, mockPicker, present.NewBufferWriter())
	err := viewer.Show(context.Background(), "")

	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestMockViewer_ImplementsViewer(t *testing.T) {
	var _ Viewer = (*MockViewer)(nil)
}
