/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package alb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/orien/lbtree/internal/present"
)

// Indent levels for the ALB hierarchy. Listeners and target groups are
// sibling branches under the load balancer.
const (
	indentLoadBalancer = 0
	indentListener     = 2
	indentRule         = 4
	indentAction       = 6
	indentTargetGroup  = 2
	indentTarget       = 4
)

type loadBalancerNode struct {
	lb types.LoadBalancer
}

func (n loadBalancerNode) Content() string {
	return fmt.Sprintf("Load balancer (%s)", present.StringOr(n.lb.DNSName, "unknown"))
}

func (n loadBalancerNode) Indent() int { return indentLoadBalancer }

type listenerNode struct {
	listener types.Listener
}

func (n listenerNode) Content() string {
	return fmt.Sprintf("Listener protocol=%s port=%d", n.listener.Protocol, aws.ToInt32(n.listener.Port))
}

func (n listenerNode) Indent() int { return indentListener }

type ruleNode struct {
	rule types.Rule
}

func (n ruleNode) Content() string {
	return fmt.Sprintf("Rule priority=%s is-default=%t",
		present.StringOr(n.rule.Priority, "unknown"),
		aws.ToBool(n.rule.IsDefault))
}

func (n ruleNode) Indent() int { return indentRule }

type actionNode struct {
	action types.Action
}

func (n actionNode) Content() string {
	switch n.action.Type {
	case types.ActionTypeEnumForward:
		return "Action (forward)"

	case types.ActionTypeEnumFixedResponse:
		cfg := n.action.FixedResponseConfig
		if cfg == nil {
			return "Action (fixed-response)"
		}
		return fmt.Sprintf("Action (fixed-response) msg=%q status-code=%s",
			aws.ToString(cfg.MessageBody),
			present.StringOr(cfg.StatusCode, "unknown"))

	case types.ActionTypeEnumRedirect:
		cfg := n.action.RedirectConfig
		if cfg == nil {
			return "Action (redirect)"
		}
		return fmt.Sprintf("Action (redirect) status-code=%s", cfg.StatusCode)

	case types.ActionTypeEnumAuthenticateCognito:
		return "Action (authenticate-cognito)"

	case types.ActionTypeEnumAuthenticateOidc:
		return "Action (authenticate-oidc)"

	default:
		return fmt.Sprintf("Action (%s)", n.action.Type)
	}
}

func (n actionNode) Indent() int { return indentAction }

type targetGroupNode struct {
	group types.TargetGroup
}

func (n targetGroupNode) Content() string {
	return fmt.Sprintf("Target group %q protocol=%s port=%d",
		present.StringOr(n.group.TargetGroupName, "??"),
		n.group.Protocol,
		aws.ToInt32(n.group.Port))
}

func (n targetGroupNode) Indent() int { return indentTargetGroup }

type targetNode struct {
	health types.TargetHealthDescription
}

func (n targetNode) Content() string {
	target := n.health.Target
	if target == nil {
		return "Target id=unknown port=0"
	}
	return fmt.Sprintf("Target id=%s port=%d",
		present.StringOr(target.Id, "unknown"),
		aws.ToInt32(target.Port))
}

func (n targetNode) Indent() int { return indentTarget }
