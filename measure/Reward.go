package measure

import (
	"fmt"

	"github.com/Ram81/objectnav/task"
)

// Reward measure names.
const (
	RewardName               = "objnav_reward"
	SparseRewardName         = "objnav_sparse_reward"
	DistanceToGoalRewardName = "d2g_reward"
)

// slackAfterSteps is the episode length after which the slack penalty
// applies on every step.
const slackAfterSteps = 20

// RewardMode selects the shaping policy of ObjectNavReward.
type RewardMode string

const (
	// ExplorationMode rewards step-over-step map exploration gain.
	ExplorationMode RewardMode = "EXPLORATION"

	// DistanceToGoalMode rewards geodesic progress toward the goal.
	DistanceToGoalMode RewardMode = "DISTANCE_TO_GOAL"

	// DistanceWhenVisibleMode explores until the goal object has been
	// seen once, then rewards distance progress for the rest of the
	// episode.
	DistanceWhenVisibleMode RewardMode = "DISTANCE_TO_GOAL_WHEN_VISIBLE_OTHERWISE_EXPLORE"
)

// RewardConfig configures the shaped navigation reward. The zero value
// is not valid: Mode must name one of the shaping policies.
type RewardConfig struct {
	Mode RewardMode

	// SlackReward is added on every step past slackAfterSteps,
	// usually negative.
	SlackReward float64

	// SuccessReward is added on steps where the host asserts success.
	SuccessReward float64

	// ExplorationCoef scales the exploration gain term.
	ExplorationCoef float64

	// GoalSeenThreshold is the goal-visibility fraction past which
	// the goal counts as seen.
	GoalSeenThreshold float64

	// GoalSeenReward is the one-time bonus for first seeing the goal.
	GoalSeenReward float64
}

// ObjectNavReward is the shaped per-step navigation reward. The mode
// term composes additively with a slack penalty past slackAfterSteps
// and the success bonus. Resetting seeds the distance baseline from
// the already-reset DistanceToGoal measure and immediately computes
// one update against it.
type ObjectNavReward struct {
	config      RewardConfig
	distance    *DistanceToGoal
	topDownMap  *TopDownMap
	goalVisible *GoalObjectVisible
	success     *Success

	reward          float64
	stepCount       int
	goalSeen        bool
	prevDistance    float64
	prevExploration *float64
}

// NewObjectNavReward returns an ObjectNavReward reading the given
// measures. An unrecognized mode is a configuration error.
func NewObjectNavReward(config RewardConfig, distance *DistanceToGoal,
	topDownMap *TopDownMap, goalVisible *GoalObjectVisible,
	success *Success) (*ObjectNavReward, error) {
	switch config.Mode {
	case ExplorationMode, DistanceToGoalMode, DistanceWhenVisibleMode:
	default:
		return nil, fmt.Errorf("newObjectNavReward: no such reward mode %q", config.Mode)
	}
	return &ObjectNavReward{
		config:      config,
		distance:    distance,
		topDownMap:  topDownMap,
		goalVisible: goalVisible,
		success:     success,
	}, nil
}

func (r *ObjectNavReward) Name() string { return RewardName }

// Dependencies declares the measures that must update before this one.
func (r *ObjectNavReward) Dependencies() []string {
	return []string{DistanceToGoalName, TopDownMapName, GoalObjectVisibleName, SuccessName}
}

// Reset clears the episode state, seeds the baselines, and computes
// one update against them.
func (r *ObjectNavReward) Reset(*task.Episode) error {
	r.reward = 0
	r.stepCount = 0
	r.goalSeen = false
	r.prevExploration = nil
	r.prevDistance = r.distance.Distance()
	return r.Update(Step{})
}

// Update recomputes the reward for the current step.
func (r *ObjectNavReward) Update(Step) error {
	r.stepCount++

	reward := 0.0
	if r.stepCount > slackAfterSteps {
		reward = r.config.SlackReward
	}

	switch r.config.Mode {
	case DistanceWhenVisibleMode:
		reward += r.distanceWhenVisibleReward()
	case DistanceToGoalMode:
		reward += r.distanceReward()
	case ExplorationMode:
		reward += r.explorationReward()
	}

	if r.success.Succeeded() {
		reward += r.config.SuccessReward
	}

	r.reward = reward
	return nil
}

// explorationReward rewards growth of the fog-of-war mask over the
// whole map. The baseline is unset until the first computation.
func (r *ObjectNavReward) explorationReward() float64 {
	ratio := r.topDownMap.Map().FogRatio()
	if r.prevExploration == nil {
		baseline := ratio
		r.prevExploration = &baseline
	}
	reward := (ratio - *r.prevExploration) * r.config.ExplorationCoef
	*r.prevExploration = ratio
	return reward
}

// distanceReward rewards geodesic progress toward the goal, positive
// when the agent got closer.
func (r *ObjectNavReward) distanceReward() float64 {
	distance := r.distance.Distance()
	reward := r.prevDistance - distance
	r.prevDistance = distance
	return reward
}

// distanceWhenVisibleReward explores until the goal visibility first
// crosses the configured threshold; that step earns the one-time
// goal-seen bonus and resets the distance baseline, and every step
// after rewards distance progress. The goal-seen flag never clears
// within an episode.
func (r *ObjectNavReward) distanceWhenVisibleReward() float64 {
	reward := 0.0

	if r.goalVisible.Visible() > r.config.GoalSeenThreshold && !r.goalSeen {
		r.goalSeen = true
		reward += r.config.GoalSeenReward
		r.prevDistance = r.distance.Distance()
	}

	if r.goalSeen {
		reward += r.distanceReward()
	} else {
		reward += r.explorationReward()
	}
	return reward
}

// Reward returns the reward computed for the current step.
func (r *ObjectNavReward) Reward() float64 {
	return r.reward
}

func (r *ObjectNavReward) Metric() interface{} {
	return r.reward
}

// SparseReward is the unshaped navigation reward: the success bonus on
// success steps and nothing else.
type SparseReward struct {
	success       *Success
	successReward float64

	reward float64
}

// NewSparseReward returns a SparseReward paying successReward on
// success steps.
func NewSparseReward(successReward float64, success *Success) *SparseReward {
	return &SparseReward{success: success, successReward: successReward}
}

func (r *SparseReward) Name() string { return SparseRewardName }

// Dependencies declares the measures that must update before this one.
func (r *SparseReward) Dependencies() []string {
	return []string{SuccessName}
}

func (r *SparseReward) Reset(*task.Episode) error {
	r.reward = 0
	return r.Update(Step{})
}

func (r *SparseReward) Update(Step) error {
	r.reward = 0
	if r.success.Succeeded() {
		r.reward = r.successReward
	}
	return nil
}

// Reward returns the reward computed for the current step.
func (r *SparseReward) Reward() float64 {
	return r.reward
}

func (r *SparseReward) Metric() interface{} {
	return r.reward
}

// DistanceToGoalReward rewards geodesic progress toward the goal plus
// the success bonus, without any exploration shaping.
type DistanceToGoalReward struct {
	distance      *DistanceToGoal
	success       *Success
	successReward float64

	prevDistance float64
	reward       float64
}

// NewDistanceToGoalReward returns a DistanceToGoalReward paying
// successReward on success steps.
func NewDistanceToGoalReward(successReward float64, distance *DistanceToGoal,
	success *Success) *DistanceToGoalReward {
	return &DistanceToGoalReward{
		distance:      distance,
		success:       success,
		successReward: successReward,
	}
}

func (r *DistanceToGoalReward) Name() string { return DistanceToGoalRewardName }

// Dependencies declares the measures that must update before this one.
func (r *DistanceToGoalReward) Dependencies() []string {
	return []string{SuccessName, DistanceToGoalName}
}

// Reset seeds the distance baseline and computes one update.
func (r *DistanceToGoalReward) Reset(*task.Episode) error {
	r.reward = 0
	r.prevDistance = r.distance.Distance()
	return r.Update(Step{})
}

func (r *DistanceToGoalReward) Update(Step) error {
	distance := r.distance.Distance()
	reward := r.prevDistance - distance
	r.prevDistance = distance

	if r.success.Succeeded() {
		reward += r.successReward
	}
	r.reward = reward
	return nil
}

// Reward returns the reward computed for the current step.
func (r *DistanceToGoalReward) Reward() float64 {
	return r.reward
}

func (r *DistanceToGoalReward) Metric() interface{} {
	return r.reward
}
