package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/utils/safe"
)

const defaultGraphQLURL = "https://api.github.com/graphql"

const queryPullRequestInfo = `query IsAutoMergeable($owner: String!, $name: String!, $headRefName: String!) {
  repository(name: $name, owner: $owner) {
    deleteBranchOnMerge
    viewerCanAdminister
    autoMergeAllowed
    pullRequests(last: 1, headRefName: $headRefName, states: [OPEN]) {
      nodes {
        id
        number
        title
        url
        mergeable
        viewerCanEnableAutoMerge
        viewerCanDisableAutoMerge
        autoMergeRequest { enabledAt }
        author { login }
        headRefName
        baseRefName
      }
    }
  }
}`

const mutationEnableAutoMerge = `mutation AutoMerge($pullRequestId: ID!) {
  enablePullRequestAutoMerge(input: {pullRequestId: $pullRequestId, mergeMethod: SQUASH}) {
    pullRequest { autoMergeRequest { enabledAt } }
  }
}`

const mutationDisableAutoMerge = `mutation CancelAutoMerge($pullRequestId: ID!) {
  disablePullRequestAutoMerge(input: {pullRequestId: $pullRequestId}) {
    pullRequest { viewerCanEnableAutoMerge }
  }
}`

const mutationAddComment = `mutation ReactComment($subjectId: ID!, $body: String!) {
  addComment(input: {body: $body, subjectId: $subjectId}) {
    commentEdge { node { id } }
  }
}`

const queryPullRequestComments = `query FindComments($pullRequestId: ID!) {
  node(id: $pullRequestId) {
    ... on PullRequest {
      comments(last: 10) {
        nodes {
          id
          body
        }
      }
    }
  }
}`

const mutationDeleteComment = `mutation DeleteComment($commentId: ID!) {
  deleteIssueComment(input: {id: $commentId}) {
    clientMutationId
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// graphql sends one query to the GraphQL endpoint and unmarshals the data
// payload into out.
func (x *Client) graphql(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return goerr.Wrap(err, "marshaling graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "building graphql request")
	}
	req.Header.Set("Authorization", "bearer "+string(x.token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "sending graphql request")
	}
	defer safe.Close(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "reading graphql response")
	}
	if resp.StatusCode != http.StatusOK {
		return goerr.New("graphql request failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return goerr.Wrap(err, "unmarshaling graphql response")
	}
	if len(envelope.Errors) > 0 {
		return goerr.New("graphql query returned errors",
			goerr.V("message", envelope.Errors[0].Message),
		)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return goerr.Wrap(err, "unmarshaling graphql data")
		}
	}
	return nil
}
